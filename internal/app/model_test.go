package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/sourcemode/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Document.Regions = []config.RegionConfig{
		{Name: "header", Content: "<h1>Hi</h1>"},
		{Name: "body", Content: "<p>There</p>"},
	}
	return cfg
}

func keyPress(s string) tea.KeyMsg {
	if s == "ctrl+e" {
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	m := New(testConfig())

	assert.False(t, m.controller.Active())
	assert.Equal(t, []string{"header", "body"}, m.doc.Regions())
	assert.Equal(t, 2, m.registry.Len())
}

func TestToggleKeyEntersSourceMode(t *testing.T) {
	m := New(testConfig())

	updated, _ := m.Update(keyPress("ctrl+e"))
	m = updated.(Model)

	require.True(t, m.controller.Active())

	// The editors are built once the mode notification arrives
	updated, _ = m.Update(ModeChangedMsg{Active: true})
	m = updated.(Model)

	require.Len(t, m.editors, 2)
	assert.Equal(t, "header", m.editors[0].Region())
	assert.True(t, m.editors[0].Focused())
	assert.Equal(t, "<h1>Hi</h1>", m.editors[0].Value())
}

func TestToggleRefusedWhileSaving(t *testing.T) {
	m := New(testConfig())

	// Start the simulated async save
	updated, _ := m.Update(keyPress("s"))
	m = updated.(Model)
	require.True(t, m.tracker.HasPending())

	updated, _ = m.Update(keyPress("ctrl+e"))
	m = updated.(Model)

	assert.False(t, m.controller.Active())

	found := false
	for _, toast := range m.toasts {
		if strings.Contains(toast.Message, "Busy") {
			found = true
		}
	}
	assert.True(t, found, "expected a busy toast")
}

func TestCommandsSuppressedInSourceMode(t *testing.T) {
	m := New(testConfig())

	updated, _ := m.Update(keyPress("ctrl+e"))
	m = updated.(Model)

	for _, cmd := range m.registry.All() {
		assert.False(t, cmd.Enabled(), "command %s should be suppressed", cmd.Name())
	}

	updated, _ = m.Update(keyPress("ctrl+e"))
	m = updated.(Model)

	for _, cmd := range m.registry.All() {
		assert.True(t, cmd.Enabled(), "command %s should be re-enabled", cmd.Name())
	}
}

func TestBoldCommandWrapsRegions(t *testing.T) {
	m := New(testConfig())

	updated, _ := m.Update(keyPress("b"))
	m = updated.(Model)

	content, err := m.doc.Read("header")
	require.NoError(t, err)
	assert.Equal(t, "<strong><h1>Hi</h1></strong>", content)
}

func TestEditingRoundTripThroughModel(t *testing.T) {
	m := New(testConfig())

	updated, _ := m.Update(keyPress("ctrl+e"))
	m = updated.(Model)
	updated, _ = m.Update(ModeChangedMsg{Active: true})
	m = updated.(Model)

	// Type into the focused editor; the live snapshot follows
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	m = updated.(Model)

	text, ok := m.controller.SourceText("header")
	require.True(t, ok)
	assert.Contains(t, text, "!")

	// Exit: the edited source lands in the document
	updated, _ = m.Update(keyPress("ctrl+e"))
	m = updated.(Model)

	content, err := m.doc.Read("header")
	require.NoError(t, err)
	assert.Contains(t, content, "!")
}

func TestViewShowsMode(t *testing.T) {
	m := New(testConfig())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "STRUCTURED")
	assert.Contains(t, view, "<h1>Hi</h1>")
}
