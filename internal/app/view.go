package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/sourcemode/internal/ui/blockview"
	"github.com/riordanpawley/sourcemode/internal/ui/statusbar"
)

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var body string
	if m.controller.Active() && m.controller.OwnsSurface() {
		body = m.sourceView()
	} else {
		body = m.structuredView()
	}
	body = m.styles.Document.Render(body)

	bar := statusbar.New(m.controller.Active(), m.tracker.Count(), m.width, m.styles).Render()
	if m.tracker.HasPending() {
		bar = lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " ", bar)
	}

	sections := []string{body}
	if toasts := m.toastRenderer.Render(m.toasts, m.width); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, bar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// structuredView renders the document's visible regions as cards
func (m Model) structuredView() string {
	width := min(m.width-6, 76)
	return blockview.RenderDocument(m.doc, width, m.styles)
}

// sourceView renders every live source editor
func (m Model) sourceView() string {
	views := make([]string, 0, len(m.editors))
	for _, ed := range m.editors {
		views = append(views, ed.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
