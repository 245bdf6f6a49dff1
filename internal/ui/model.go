package ui

import (
	"time"

	"github.com/atomicstack/menuctl/internal/logging"
	"github.com/atomicstack/menuctl/menu"
	"github.com/atomicstack/menuctl/tooltip"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// canvasRows is the number of simulated list entries on the demo canvas.
const canvasRows = 8

// Config describes the demo model's options.
type Config struct {
	Items         []menu.ItemSpec
	ShowTips      bool
	TipDuration   time.Duration
	CaseSensitive bool
	Verbose       bool
}

// redrawMsg asks the event loop for a repaint after an overlay change from
// a timer goroutine.
type redrawMsg struct{}

// Model hosts a live controller against the simulated native menu: the
// canvas plays the part of a list control, "m" raises a context-menu
// activation for the entry under the pointer, and selections run through
// the controller's dispatch with result tooltips on the overlay.
type Model struct {
	ctrl    *menu.Controller
	window  *Window
	overlay *Overlay
	tips    *tooltip.Handler

	row       int
	cursor    int
	filter    textinput.Model
	filtering bool
	verbose   bool
	errMsg    string
	width     int
	height    int
}

// NewModel wires the controller, simulated widget, overlay, and tooltip
// handler together and registers the item list.
func NewModel(cfg Config) (*Model, error) {
	window := NewWindow()
	overlay := NewOverlay()
	tips, err := tooltip.NewHandler(tooltip.HandlerConfig{
		Renderer: overlay,
		Pool:     tooltip.NewPool(tooltip.DefaultSlots),
		Defaults: []tooltip.Option{tooltip.WithDuration(cfg.TipDuration)},
	})
	if err != nil {
		return nil, err
	}
	items := cfg.Items
	if len(items) == 0 {
		items = DefaultItems()
	}
	ctrl, err := menu.New(menu.Config{
		Native:        window,
		Mode:          menu.ModeControl,
		CaseSensitive: cfg.CaseSensitive,
		ShowTips:      cfg.ShowTips,
		Tips:          tips,
		Resolver:      NewResolver(),
		OnActivate:    adjustAvailability,
		Items:         items,
	})
	if err != nil {
		return nil, err
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter items"
	filter.CharLimit = 40

	return &Model{
		ctrl:    ctrl,
		window:  window,
		overlay: overlay,
		tips:    tips,
		filter:  filter,
		verbose: cfg.Verbose,
	}, nil
}

// adjustAvailability runs once per activation, before the menu shows: the
// first canvas entry is protected, so destructive items grey out for it.
func adjustAvailability(c *menu.Controller, tok *menu.Token) {
	for _, name := range []string{"Delete Entry", "Rename Entry"} {
		if !c.Has(name) {
			continue
		}
		if tok.Entry == 1 {
			c.Disable(name)
		} else {
			c.Enable(name)
		}
	}
}

// AttachProgram installs the repaint callback for overlay changes raised
// outside the event loop.
func (m *Model) AttachProgram(p *tea.Program) {
	m.overlay.SetNotify(func() { p.Send(redrawMsg{}) })
}

// Controller exposes the live controller, mostly for tests.
func (m *Model) Controller() *menu.Controller {
	return m.ctrl
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case redrawMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.Type {
		case tea.KeyEscape:
			m.filtering = false
			m.filter.SetValue("")
			m.filter.Blur()
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.window.Visible() {
			if m.cursor > 0 {
				m.cursor--
			}
		} else if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.window.Visible() {
			if m.cursor < len(m.visibleEntries())-1 {
				m.cursor++
			}
		} else if m.row < canvasRows-1 {
			m.row++
		}
	case "m":
		m.activate()
	case "enter":
		if m.window.Visible() {
			m.selectCurrent()
		}
	case "esc":
		if m.window.Visible() {
			m.window.Hide()
			m.cursor = 0
		}
	case "/":
		if m.window.Visible() {
			m.filtering = true
			return m, m.filter.Focus()
		}
	}
	return m, nil
}

// activate simulates a right click on the canvas entry under the pointer.
func (m *Model) activate() {
	x, y := 12, m.row+2
	m.overlay.SetPointer(x, y)
	m.errMsg = ""
	err := m.ctrl.Activate(menu.Activation{
		Control:    "canvas",
		Entry:      m.row + 1,
		RightClick: true,
		X:          x,
		Y:          y,
	})
	if err != nil {
		m.errMsg = err.Error()
		logging.Error(err)
		return
	}
	m.cursor = 0
}

// visibleEntries applies the filter to the native entry list.
func (m *Model) visibleEntries() []EntryView {
	entries := m.window.Items()
	query := m.filter.Value()
	if query == "" {
		return entries
	}
	filtered := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		if fuzzy.MatchFold(query, e.Name) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (m *Model) clampCursor() {
	if n := len(m.visibleEntries()); m.cursor >= n {
		m.cursor = 0
	}
}

// selectCurrent raises the native selection callback for the highlighted
// entry.
func (m *Model) selectCurrent() {
	entries := m.visibleEntries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return
	}
	name := entries[m.cursor].Name
	all := m.window.Items()
	for i, e := range all {
		if e.Name == name {
			m.filter.SetValue("")
			if err := m.window.Select(i); err != nil {
				m.errMsg = err.Error()
				logging.Error(err)
			}
			m.cursor = 0
			return
		}
	}
}
