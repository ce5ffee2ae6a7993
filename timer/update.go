package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// handleState adopts a reconciler snapshot and drives the clock from it.
func (t *Timer) handleState(msg stateMsg) (tea.Model, tea.Cmd) {
	slog.Debug("state changed",
		slog.String("event", msg.event.String()),
		slog.String("state", spew.Sdump(msg.state)),
	)

	t.state = msg.state
	t.keymap.sync(msg.state.Running())
	t.clock.Set(msg.state.Paused, msg.state.StartInstant)

	return t, t.waitForState
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keymap.quit):
		t.quitting = true
		t.Close()

		return t, tea.Quit

	case t.loading:
		return t, nil

	case key.Matches(msg, t.keymap.start):
		return t, func() tea.Msg {
			t.reconciler.Start(t.ctx)
			return nil
		}

	case key.Matches(msg, t.keymap.stop):
		return t, func() tea.Msg {
			t.reconciler.Stop(t.ctx)
			return nil
		}

	case key.Matches(msg, t.keymap.refresh):
		return t, func() tea.Msg {
			t.reconciler.RefreshToday(t.ctx)
			return nil
		}

	case key.Matches(msg, t.keymap.table):
		t.showTable = !t.showTable
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		t.elapsed = float64(msg)

		return t, t.waitForTick

	case stateMsg:
		return t.handleState(msg)

	case toastMsg:
		t.toast = msg

		return t, t.waitForToast

	case loadedMsg:
		t.loading = false

		return t, nil

	case spinner.TickMsg:
		if !t.loading {
			return t, nil
		}

		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)

		return t, cmd

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))

		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		t.help.Width = msg.Width

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		var cmd tea.Cmd
		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
