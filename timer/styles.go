package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 60
)

type styles struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1F2937")
	dim := lipgloss.Color("#6B7280")

	if dark {
		fg = lipgloss.Color("#F9FAFB")
		dim = lipgloss.Color("#9CA3AF")
	}

	return styles{
		Base: lipgloss.NewStyle().Padding(1, padding),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7C3AED")).
			Padding(0, 1),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		Secondary: lipgloss.NewStyle().Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(dim),
		Running: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")),
		Paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}
