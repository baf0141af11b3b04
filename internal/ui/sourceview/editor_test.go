package sourceview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/sourcemode/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestEditor_SeededWithContent(t *testing.T) {
	ed := New("main", "<p>Hello</p>", styles.New())

	assert.Equal(t, "main", ed.Region())
	assert.Equal(t, "<p>Hello</p>", ed.Value())
}

func TestEditor_FocusAndBlur(t *testing.T) {
	ed := New("main", "", styles.New())
	assert.False(t, ed.Focused())

	ed, _ = ed.Focus()
	assert.True(t, ed.Focused())

	ed = ed.Blur()
	assert.False(t, ed.Focused())
}

func TestEditor_UpdateEditsValue(t *testing.T) {
	ed := New("main", "", styles.New())
	ed, _ = ed.Focus()

	ed, _ = ed.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	assert.Equal(t, "hi", ed.Value())
}

func TestEditor_ViewContainsRegionTitle(t *testing.T) {
	ed := New("main", "content", styles.New())

	view := ed.View()

	assert.Contains(t, view, "<main>")
	assert.Contains(t, view, "content")
}
