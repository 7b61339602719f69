// Package board hosts draggable boxes in a bubbletea program. Each box gets
// its own drag.Controller; the board feeds the controllers pointer samples
// from terminal mouse events and paints the boxes at their left/top cells.
package board

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragboard/drag"
	"github.com/rileylov/dragboard/layout"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

// Model is the board's tea.Model.
type Model struct {
	id       string
	width    int
	height   int
	initial  *layout.Layout
	path     string
	mode     string
	boxes    []*box // paint order, topmost last
	byID     map[string]*box
	bus      *bus
	pointer  pointer
	keys     keyMap
	header   *header
	footer   *footer
	inspect  inspector
	showInsp bool
	selected string
	status   string

	writeClip func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithPath sets the file ctrl+s saves the layout to.
func WithPath(path string) Option {
	return func(m *Model) { m.path = path }
}

// WithMode sets the axis mode for boxes that don't name one, ahead of the
// layout's own default.
func WithMode(mode string) Option {
	return func(m *Model) { m.mode = mode }
}

// New builds a board from l, attaching one drag controller per box. It
// fails if any box ends up with an invalid mode.
func New(l *layout.Layout, opts ...Option) (*Model, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		id:        zone.NewPrefix(),
		initial:   l.Clone(),
		byID:      make(map[string]*box, len(l.Boxes)),
		bus:       newBus(),
		keys:      newKeyMap(),
		footer:    newFooter(),
		inspect:   newInspector(),
		status:    "Drag a box with the left mouse button",
		writeClip: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.keys.Save.SetEnabled(m.path != "")
	m.header = newHeader(m.id, l.Title)

	for _, spec := range l.Boxes {
		b := newBox(spec)
		ctrl, err := drag.New(b, drag.Options{Mode: spec.EffectiveMode(m.mode, l.Mode)}, m.bus.publisher(spec.ID))
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", spec.ID, err)
		}
		b.ctrl = ctrl
		m.boxes = append(m.boxes, b)
		m.byID[b.id] = b
		m.bus.subscribe(b.id, m.recordDrag(b))
	}
	m.inspect.refresh(m.ordered())

	slog.Info("board ready", "boxes", len(m.boxes), "path", m.path)
	return m, nil
}

// OnDrag subscribes fn to the drag events of box id.
func (m *Model) OnDrag(id string, fn func(drag.Event)) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("board: unknown box %q", id)
	}
	m.bus.subscribe(id, fn)
	return nil
}

// Controller returns the drag controller of box id.
func (m *Model) Controller(id string) (*drag.Controller, bool) {
	b, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return b.ctrl, true
}

// Status returns the current footer status line.
func (m *Model) Status() string { return m.status }

// Selected returns the id of the last clicked box.
func (m *Model) Selected() string { return m.selected }

func (m *Model) recordDrag(b *box) func(drag.Event) {
	return func(e drag.Event) {
		b.last = e
		b.moves++
		m.status = fmt.Sprintf("%s #%s x:%d y:%d", e.Name, b.id, e.X, e.Y)
		slog.Debug("drag", "box", b.id, "x", e.X, "y", e.Y,
			"left", b.Style(drag.PropLeft), "top", b.Style(drag.PropTop))
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mouse):
			zone.SetEnabled(!zone.Enabled())
		case key.Matches(msg, m.keys.Reset):
			m.run(actionReset)
		case key.Matches(msg, m.keys.Inspect):
			m.run(actionInspect)
		case key.Matches(msg, m.keys.Copy):
			m.run(actionCopy)
		case key.Matches(msg, m.keys.Save):
			m.save()
		case key.Matches(msg, m.keys.Help):
			m.footer.help.ShowAll = !m.footer.help.ShowAll
		}

	case tea.MouseMsg:
		if !m.pointer.IsDragging() {
			if a := m.header.click(msg); a != actionNone {
				m.run(a)
				return m, nil
			}
		}
		handled, b, clicked := m.pointer.HandleMouseEvent(msg, m.boxes, m.origin())
		if !handled {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress {
			m.raise(b)
		}
		if clicked {
			m.selected = b.id
			m.status = fmt.Sprintf("selected #%s", b.id)
		}
		if m.showInsp {
			m.inspect.refresh(m.ordered())
		}
	}

	return m, nil
}

func (m *Model) run(a action) {
	switch a {
	case actionReset:
		m.reset()
	case actionInspect:
		m.showInsp = !m.showInsp
		m.inspect.refresh(m.ordered())
	case actionCopy:
		m.copyLayout()
	}
}

// reset ends any drag and puts every box back where the layout had it.
func (m *Model) reset() {
	m.pointer.stopDrag()
	for _, spec := range m.initial.Boxes {
		b := m.byID[spec.ID]
		b.SetStyle(drag.PropLeft, string(spec.Left))
		b.SetStyle(drag.PropTop, string(spec.Top))
		b.last = drag.Event{}
		b.moves = 0
	}
	m.selected = ""
	m.inspect.refresh(m.ordered())
	m.status = "Positions reset"
}

// Snapshot returns the layout with every box at its current position.
func (m *Model) Snapshot() *layout.Layout {
	l := m.initial.Clone()
	for i := range l.Boxes {
		b := m.byID[l.Boxes[i].ID]
		l.Boxes[i].Left = layout.Coord(b.Style(drag.PropLeft))
		l.Boxes[i].Top = layout.Coord(b.Style(drag.PropTop))
	}
	return l
}

func (m *Model) copyLayout() {
	if err := m.writeClip(m.Snapshot().String()); err != nil {
		slog.Warn("copy layout", "error", err)
		m.status = fmt.Sprintf("Couldn't write to clipboard: %v", err)
		return
	}
	m.status = "Layout copied to clipboard"
}

func (m *Model) save() {
	if m.path == "" {
		return
	}
	if err := m.Snapshot().Save(m.path); err != nil {
		slog.Warn("save layout", "path", m.path, "error", err)
		m.status = fmt.Sprintf("Couldn't save layout: %v", err)
		return
	}
	slog.Info("layout saved", "path", m.path)
	m.status = "Saved " + m.path
}

// raise moves b to the top of the paint order.
func (m *Model) raise(b *box) {
	for i, other := range m.boxes {
		if other == b {
			m.boxes = append(append(m.boxes[:i:i], m.boxes[i+1:]...), b)
			return
		}
	}
}

// ordered returns the boxes in layout order.
func (m *Model) ordered() []*box {
	out := make([]*box, 0, len(m.initial.Boxes))
	for _, spec := range m.initial.Boxes {
		out = append(out, m.byID[spec.ID])
	}
	return out
}

// origin is the screen cell of canvas position 0,0: just below the header.
func (m *Model) origin() drag.Point {
	return drag.Point{X: 0, Y: headerHeight}
}

func (m *Model) headerView() string {
	return m.header.view(m.width, func(a action) bool {
		return a == actionInspect && m.showInsp
	})
}

func (m *Model) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := m.headerView()
	footer := m.footer.view(m.width, m.status, m.keys)
	var insp string
	if m.showInsp {
		insp = m.inspect.view()
	}

	canvasHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if insp != "" {
		canvasHeight -= lipgloss.Height(insp)
	}
	canvasHeight = max(canvasHeight, 1)

	canvas := blank(m.width, canvasHeight)
	for _, b := range m.boxes {
		pos := b.position()
		canvas = overlay(canvas, b.render(b.id == m.selected), pos.Left, pos.Top)
	}

	parts := []string{header, canvas}
	if insp != "" {
		parts = append(parts, insp)
	}
	parts = append(parts, footer)
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
