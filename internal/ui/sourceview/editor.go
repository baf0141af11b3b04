// Package sourceview provides the per-region source text editor shown
// while source editing mode is active.
package sourceview

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/sourcemode/internal/ui/styles"
)

// Editor is a source text editor for a single document region. It is
// seeded from the region's snapshot on creation and discarded when
// source editing mode exits.
type Editor struct {
	region   string
	textarea textarea.Model
	styles   *styles.Styles
	focused  bool
}

// New creates an editor for a region, seeded with its captured source
func New(region, content string, s *styles.Styles) Editor {
	ta := textarea.New()
	ta.SetValue(content)
	ta.CharLimit = 0
	ta.SetWidth(70)
	ta.SetHeight(6)
	ta.Blur()

	return Editor{
		region:   region,
		textarea: ta,
		styles:   s,
	}
}

// Region returns the name of the region this editor targets
func (e Editor) Region() string {
	return e.region
}

// Value returns the current source text
func (e Editor) Value() string {
	return e.textarea.Value()
}

// Focused reports whether this editor has input focus
func (e Editor) Focused() bool {
	return e.focused
}

// Focus gives this editor input focus
func (e Editor) Focus() (Editor, tea.Cmd) {
	e.focused = true
	return e, e.textarea.Focus()
}

// Blur removes input focus
func (e Editor) Blur() Editor {
	e.focused = false
	e.textarea.Blur()
	return e
}

// SetSize resizes the underlying textarea
func (e Editor) SetSize(width, height int) Editor {
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
	return e
}

// Update handles messages for the underlying textarea
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor with its region title and frame
func (e Editor) View() string {
	frame := e.styles.SourceFrame
	if e.focused {
		frame = e.styles.SourceFrameActive
	}
	title := e.styles.SourceTitle.Render("<" + e.region + ">")
	return frame.Render(title + "\n" + e.textarea.View())
}
