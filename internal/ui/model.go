package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"menuvroom/internal/config"
	"menuvroom/internal/selection"
	"menuvroom/internal/ui/views"
)

// Model is the bubbletea model for one launcher session. It owns the
// selection state; only Update mutates it.
type Model struct {
	controller *selection.Controller
	state      *selection.State
	keys       KeyMap
	help       help.Model
	renderer   *views.Renderer
	settings   config.UISettings
	status     string
	width      int
	result     selection.Result
}

// NewModel creates a model over a ready controller
func NewModel(controller *selection.Controller, settings config.UISettings) *Model {
	return &Model{
		controller: controller,
		state:      &selection.State{},
		keys:       DefaultKeyMap(),
		help:       help.New(),
		renderer:   views.NewRenderer(views.NewStyles(settings.AccentColor, settings.SelectionColor)),
		settings:   settings,
	}
}

// SetStatus sets the footer line
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Result is the outcome of the session once the program has exited
func (m *Model) Result() selection.Result {
	return m.result
}

// State exposes the selection state
func (m *Model) State() *selection.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		for _, ev := range EventsForKey(msg, m.keys) {
			res := m.controller.Handle(m.state, ev)
			if res.Outcome != selection.Continue {
				m.result = res
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.state.Done() {
		return ""
	}

	helpView := ""
	if m.settings.ShowHelp {
		helpView = m.help.View(m.keys)
	}
	return m.renderer.Render(m.controller.Frame(m.state), views.Options{
		Width:       m.width,
		ShowHotkeys: m.settings.ShowHotkeys,
		Status:      m.status,
		Help:        helpView,
	})
}
