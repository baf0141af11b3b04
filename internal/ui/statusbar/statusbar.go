// Package statusbar renders the bar at the bottom of the TUI.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/sourcemode/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	sourceMode bool
	pending    int
	width      int
	styles     *styles.Styles
}

// New creates a new StatusBar
func New(sourceMode bool, pending, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		sourceMode: sourceMode,
		pending:    pending,
		width:      width,
		styles:     styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	mode := "structured"
	label := " STRUCTURED "
	if sb.sourceMode {
		mode = "source"
		label = " SOURCE "
	}
	modeBadge := sb.styles.ModeBadge(mode).Render(label)

	hints := GetHints(sb.sourceMode)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	separator := sb.styles.StatusHint.Render(" │ ")
	content := lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hintsRendered)

	if sb.pending > 0 {
		pendingRendered := sb.styles.StatusPending.Render(fmt.Sprintf(" ⋯ %d pending", sb.pending))
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, separator, pendingRendered)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
