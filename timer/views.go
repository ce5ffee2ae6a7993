package timer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chrono-hq/chrono/internal/session"
	"github.com/chrono-hq/chrono/internal/timeutil"
)

func (t *Timer) timeFormat() string {
	if t.opts.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (t *Timer) statusView() string {
	if !t.state.Running() {
		return t.style.Paused.Render("[Paused]")
	}

	since := t.state.StartInstant.In(t.opts.Location).Format(t.timeFormat())

	return t.style.Running.Render("[Running]") +
		t.style.Hint.Render(" since "+since)
}

func (t *Timer) todayView() string {
	total := t.reconciler.TotalToday(t.elapsed)

	var percent float64
	if t.opts.WorkdaySeconds > 0 {
		percent = min(total/t.opts.WorkdaySeconds, 1)
	}

	var s strings.Builder

	s.WriteString(t.style.Secondary.Render(
		"Today " + timeutil.ToElapsedCounter(total).String(),
	))

	if t.opts.WorkdaySeconds > 0 {
		s.WriteString(t.style.Hint.Render(
			" of " + timeutil.ToElapsedCounter(t.opts.WorkdaySeconds).String(),
		))
	}

	s.WriteString("\n")
	s.WriteString(t.progress.ViewAs(percent))

	return s.String()
}

func (t *Timer) toastView() string {
	if t.toast.text == "" {
		return ""
	}

	switch t.toast.kind {
	case toastSuccess:
		return t.style.Success.Render(t.toast.text)
	case toastError:
		return t.style.Error.Render(t.toast.text)
	default:
		return t.style.Info.Render(t.toast.text)
	}
}

func (t *Timer) tableView() string {
	tbl := session.NewTable(t.state.Today, t.opts.Location)
	tbl.Hour24 = t.opts.TwentyFourHour

	if tbl.Len() == 0 {
		return t.style.Hint.Render("no sessions today")
	}

	data := tbl.Data()

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.style.Hint).
		Headers(data[0]...).
		Rows(data[1:]...).
		Render()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.style.Title.Render("CHRONO"))
	s.WriteString("\n\n")

	if t.loading {
		s.WriteString(t.spinner.View() + t.style.Hint.Render(" loading sessions"))
		return t.style.Base.Render(s.String())
	}

	s.WriteString(t.statusView())
	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(
		timeutil.ToElapsedCounter(t.elapsed).String(),
	))
	s.WriteString("\n\n")
	s.WriteString(t.todayView())

	if toast := t.toastView(); toast != "" {
		s.WriteString("\n\n" + toast)
	}

	if t.showTable {
		s.WriteString("\n\n" + t.tableView())
	}

	s.WriteString("\n\n" + t.help.ShortHelpView(t.keymap.ShortHelp()))

	return t.style.Base.Render(s.String())
}
