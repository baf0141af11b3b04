// Package styles contains the lipgloss styles shared across the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Document
	Document     lipgloss.Style
	RegionCard   lipgloss.Style
	RegionActive lipgloss.Style
	RegionName   lipgloss.Style
	RegionBody   lipgloss.Style

	// Source editors
	SourceFrame       lipgloss.Style
	SourceFrameActive lipgloss.Style
	SourceTitle       lipgloss.Style

	// Command palette
	CommandEnabled  lipgloss.Style
	CommandDisabled lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusMode    lipgloss.Style
	StatusHint    lipgloss.Style
	StatusPending lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Document: lipgloss.NewStyle().
			Padding(1, 2),

		RegionCard: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		RegionActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		RegionName: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		RegionBody: lipgloss.NewStyle().
			Foreground(Text),

		SourceFrame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 1).
			MarginBottom(1),

		SourceFrameActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Mauve).
			Padding(0, 1).
			MarginBottom(1),

		SourceTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		CommandEnabled: lipgloss.NewStyle().
			Foreground(Green),

		CommandDisabled: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext0),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Crust).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusPending: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		ToastInfo: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Text).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Background(Green).
			Foreground(Crust).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Background(Peach).
			Foreground(Crust).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Background(Red).
			Foreground(Crust).
			Padding(0, 1),
	}
}

// ModeBadge returns the status badge style for an editing mode
func (s *Styles) ModeBadge(mode string) lipgloss.Style {
	color, ok := ModeColors[mode]
	if !ok {
		color = Blue
	}
	return s.StatusMode.Background(color)
}
