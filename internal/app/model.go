// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/sourcemode/internal/config"
	"github.com/riordanpawley/sourcemode/internal/domain"
	"github.com/riordanpawley/sourcemode/internal/services/command"
	"github.com/riordanpawley/sourcemode/internal/services/pending"
	"github.com/riordanpawley/sourcemode/internal/services/snapshot"
	"github.com/riordanpawley/sourcemode/internal/services/sourceedit"
	"github.com/riordanpawley/sourcemode/internal/types"
	"github.com/riordanpawley/sourcemode/internal/ui/sourceview"
	"github.com/riordanpawley/sourcemode/internal/ui/styles"
	"github.com/riordanpawley/sourcemode/internal/ui/toast"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// ModeChangedMsg is delivered when the source editing mode flips
type ModeChangedMsg struct {
	Active bool
}

// saveDoneMsg signals that the simulated async save finished
type saveDoneMsg struct {
	done func()
}

type tickMsg time.Time

// Model is the main application state
type Model struct {
	// Document and services
	doc        *domain.Document
	registry   *command.Registry
	tracker    *pending.Tracker
	controller *sourceedit.Controller

	// Source editors, one per region while source mode is active
	editors []sourceview.Editor
	focused int

	// Mode notifications bridged into TEA messages
	modeChanges chan bool

	// UI state
	toasts        []Toast
	toastRenderer *toast.Renderer
	spinner       spinner.Model
	styles        *styles.Styles

	// Terminal size
	width  int
	height int

	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger
}

// New creates a new application model with the given config
func New(cfg *config.Config) Model {
	logger := slog.Default()
	s := styles.New()

	// Build the structured document from configured regions
	doc := domain.NewDocument()
	for _, region := range cfg.Document.Regions {
		if err := doc.AddRegion(region.Name, region.Content); err != nil {
			logger.Error("skipping region", "region", region.Name, "error", err)
		}
	}

	// Formatting commands operate on the structured model, so the
	// source editing gate must hold them disabled while source mode
	// is active
	registry := command.NewRegistry()
	registry.Register(command.New("bold", wrapRegions(doc, "strong")))
	registry.Register(command.New("italic", wrapRegions(doc, "em")))

	gate := command.NewGate(registry, sourceedit.Tag)
	tracker := pending.NewTracker()
	store := snapshot.NewStore()

	controller := sourceedit.NewController(doc, store, gate, tracker, sourceedit.Options{
		OwnsSurface: !cfg.Surface.ExternallyManaged,
	}, logger)

	modeChanges := make(chan bool, 8)
	controller.Subscribe(func(active bool) {
		modeChanges <- active
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Yellow)

	return Model{
		doc:           doc,
		registry:      registry,
		tracker:       tracker,
		controller:    controller,
		modeChanges:   modeChanges,
		toasts:        []Toast{},
		toastRenderer: toast.New(s),
		spinner:       sp,
		styles:        s,
		config:        cfg,
		logger:        logger,
	}
}

// wrapRegions returns a command handler that wraps every region's
// serialized content in the given tag
func wrapRegions(doc *domain.Document, tag string) command.Handler {
	return func() error {
		for _, name := range doc.Regions() {
			content, err := doc.Read(name)
			if err != nil {
				return err
			}
			wrapped := fmt.Sprintf("<%s>%s</%s>", tag, content, tag)
			if err := doc.Write(name, wrapped); err != nil {
				return err
			}
		}
		return nil
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.listenForModeChanges(),
		tickEvery(time.Second),
	)
}

// listenForModeChanges waits for the next controller notification
func (m Model) listenForModeChanges() tea.Cmd {
	return func() tea.Msg {
		return ModeChangedMsg{Active: <-m.modeChanges}
	}
}

// tickEvery schedules a periodic tick
func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditors()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ModeChangedMsg:
		return m.handleModeChange(msg)

	case saveDoneMsg:
		msg.done()
		m.addToast(types.NewToast(ToastSuccess, "Document saved", 3*time.Second))
		return m, nil

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)
	}

	return m.updateFocusedEditor(msg)
}

// handleKey routes key presses
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if key == m.config.Keys.ToggleSource {
		return m.toggleSourceMode()
	}

	if m.controller.Active() {
		return m.handleSourceKey(msg)
	}
	return m.handleStructuredKey(msg)
}

// handleStructuredKey handles keys while the structured view is shown
func (m Model) handleStructuredKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "b":
		return m.executeCommand("bold")

	case "i":
		return m.executeCommand("italic")

	case "s":
		// Simulated async save: while it runs, the toggle is refused
		done := m.tracker.Begin("save")
		m.addToast(types.NewToast(ToastInfo, "Saving…", 2*time.Second))
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return saveDoneMsg{done: done}
		})
	}
	return m, nil
}

// handleSourceKey handles keys while source editing mode is active
func (m Model) handleSourceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focusEditor((m.focused + 1) % max(len(m.editors), 1))
		return m, nil

	case "shift+tab":
		m.focusEditor((m.focused - 1 + len(m.editors)) % max(len(m.editors), 1))
		return m, nil
	}

	return m.updateFocusedEditor(msg)
}

// toggleSourceMode asks the controller to flip the mode
func (m Model) toggleSourceMode() (tea.Model, tea.Cmd) {
	if err := m.controller.Toggle(); err != nil {
		if errors.Is(err, domain.ErrNotPermitted) {
			m.addToast(types.NewToast(ToastWarning, "Busy: finish pending action first", 3*time.Second))
		} else {
			m.addToast(types.NewToast(ToastError, err.Error(), 5*time.Second))
		}
		return m, nil
	}
	// The view switches when the ModeChangedMsg arrives
	return m, nil
}

// handleModeChange rebuilds the view state for the new mode
func (m Model) handleModeChange(msg ModeChangedMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg.Active {
		m.editors = m.buildEditors()
		m.resizeEditors()
		m.focused = 0
		if len(m.editors) > 0 {
			var cmd tea.Cmd
			m.editors[0], cmd = m.editors[0].Focus()
			cmds = append(cmds, cmd)
		}
		m.addToast(types.NewToast(ToastInfo, "Source editing on", 2*time.Second))
	} else {
		m.editors = nil
		m.focused = 0
		m.addToast(types.NewToast(ToastInfo, "Source editing off", 2*time.Second))
	}

	cmds = append(cmds, m.listenForModeChanges())
	return m, tea.Batch(cmds...)
}

// buildEditors creates one source editor per captured region snapshot
func (m *Model) buildEditors() []sourceview.Editor {
	var editors []sourceview.Editor
	for _, name := range m.doc.Regions() {
		text, ok := m.controller.SourceText(name)
		if !ok {
			continue
		}
		ed := sourceview.New(name, text, m.styles)
		editors = append(editors, ed)
	}
	return editors
}

// focusEditor moves input focus to the editor at index i
func (m *Model) focusEditor(i int) {
	if len(m.editors) == 0 {
		return
	}
	m.editors[m.focused] = m.editors[m.focused].Blur()
	m.focused = i
	m.editors[i], _ = m.editors[i].Focus()
}

// updateFocusedEditor forwards a message to the focused source editor
// and records the resulting text as the region's live snapshot
func (m Model) updateFocusedEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.controller.Active() || len(m.editors) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	ed := m.editors[m.focused]
	ed, cmd = ed.Update(msg)
	m.editors[m.focused] = ed

	if err := m.controller.UpdateSource(ed.Region(), ed.Value()); err != nil {
		m.logger.Error("source update rejected", "region", ed.Region(), "error", err)
	}
	return m, cmd
}

// executeCommand runs a registered command by name
func (m Model) executeCommand(name string) (tea.Model, tea.Cmd) {
	cmd := m.registry.Get(name)
	if cmd == nil {
		return m, nil
	}
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, command.ErrDisabled) {
			m.addToast(types.NewToast(ToastWarning, name+" is disabled", 3*time.Second))
		} else {
			m.addToast(types.NewToast(ToastError, err.Error(), 5*time.Second))
		}
		return m, nil
	}
	m.addToast(types.NewToast(ToastSuccess, "Applied "+name, 2*time.Second))
	return m, nil
}

// resizeEditors fits the source editors to the terminal
func (m *Model) resizeEditors() {
	if m.width == 0 {
		return
	}
	for i, ed := range m.editors {
		m.editors[i] = ed.SetSize(m.width-6, 6)
	}
}

// addToast adds a toast notification to the list
func (m *Model) addToast(toast Toast) {
	m.toasts = append(m.toasts, toast)
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	now := time.Now()
	filtered := make([]Toast, 0, len(m.toasts))

	for _, toast := range m.toasts {
		if toast.Expires.After(now) {
			filtered = append(filtered, toast)
		}
	}

	m.toasts = filtered
}
