// Package blockview renders the structured document as region cards.
package blockview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/sourcemode/internal/domain"
	"github.com/riordanpawley/sourcemode/internal/ui/styles"
)

// RenderDocument renders every visible region of a document as a
// vertical stack of cards. Concealed regions are skipped: while their
// source editors are live the structured view must not show stale
// content.
func RenderDocument(doc *domain.Document, width int, s *styles.Styles) string {
	var cards []string
	for _, name := range doc.Regions() {
		region, ok := doc.Get(name)
		if !ok || region.Concealed {
			continue
		}
		cards = append(cards, renderCard(region, width, s))
	}
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders a single region card
func renderCard(region domain.Region, width int, s *styles.Styles) string {
	cardStyle := s.RegionCard.Width(width)

	name := s.RegionName.Render(region.Name)
	body := s.RegionBody.Render(region.Content)

	content := lipgloss.JoinVertical(lipgloss.Left, name, body)
	return cardStyle.Render(content)
}
