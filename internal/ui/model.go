package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"dicbrowse/internal/config"
	"dicbrowse/internal/ui/geometry"
	"dicbrowse/internal/ui/handlers"
	"dicbrowse/internal/ui/input"
	inputtypes "dicbrowse/internal/ui/input/types"
	"dicbrowse/internal/ui/services/navigation"
	"dicbrowse/internal/ui/viewmodels"
	"dicbrowse/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config *config.Config
	nav    *navigation.Service

	width  int
	height int

	// listRect is the index list geometry of the last layout, used to map clicks
	listRect geometry.Rect

	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	pager        *PagerOps
}

// NewModel creates a new UI model over a navigation service whose first
// dictionary is already loaded
func NewModel(cfg *config.Config, nav *navigation.Service, clipboard handlers.Clipboard) *Model {
	inputHandler := input.New()
	return &Model{
		config:       cfg,
		nav:          nav,
		inputHandler: inputHandler,
		eventHandler: handlers.NewEventHandler(nav, clipboard, cfg.PageStep),
		viewModel:    viewmodels.NewViewModel(nav, cfg, inputHandler.KeyMap()),
		renderer:     views.NewRenderer(),
		pager:        NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.config.UISettings.Title)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		if layout, ok := views.ComputeLayout(msg.Width, msg.Height); ok {
			m.listRect = layout.IndexRect()
		} else {
			m.listRect = geometry.Rect{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.dispatch(m.inputHandler.HandleKey(msg)...)

	case tea.MouseMsg:
		if ev, ok := m.inputHandler.HandleMouse(msg); ok {
			return m.dispatch(ev)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.viewModel.SetError(msg.err)
		}
		return m, nil
	}

	return m, nil
}

// dispatch routes events, in order, through the event handler
func (m *Model) dispatch(events ...inputtypes.Event) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range events {
		out := m.eventHandler.HandleEvent(ev, m.listRect)
		switch {
		case out.Err != nil:
			m.viewModel.SetError(out.Err)
		case out.Status != "":
			m.viewModel.SetStatus(out.Status)
		default:
			m.viewModel.ClearStatus()
		}

		if out.Quit {
			return m, tea.Quit
		}
		if out.OpenPager {
			cmds = append(cmds, m.openPager())
		}
	}
	return m, tea.Batch(cmds...)
}

// openPager returns a command that shows the definition using the ov pager
func (m *Model) openPager() tea.Cmd {
	content := pagerContent(m.nav.GetSelectedWord(), m.nav.GetDefinition())
	return func() tea.Msg {
		return pagerMsg{err: m.pager.Show(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	out, rect := m.renderer.Render(m.viewModel.BuildViewState())
	m.listRect = rect
	return out
}
