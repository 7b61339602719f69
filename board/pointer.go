package board

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/dragboard/drag"
)

// pointer turns terminal mouse events into pointer-down, move, up and leave
// calls on the box under the cursor. Only one box is active at a time.
type pointer struct {
	active *box
}

// HandleMouseEvent routes msg to the boxes' controllers. boxes is in paint
// order, so the last box under the pointer wins a press. Presses are tested
// against each box's current geometry. It returns true if the event was
// consumed.
func (p *pointer) HandleMouseEvent(msg tea.MouseMsg, boxes []*box, origin drag.Point) (handled bool, target *box, clicked bool) {
	pt := drag.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false, nil, false
		}
		for i := len(boxes) - 1; i >= 0; i-- {
			if boxes[i].contains(pt, origin) {
				p.startDrag(boxes[i], pt)
				return true, boxes[i], false
			}
		}
	case tea.MouseActionMotion:
		if p.active == nil {
			return false, nil, false
		}
		b := p.active
		b.ctrl.PointerMove(pt)
		// The box follows the pointer, so the pointer only ends up outside
		// when the axis mode held the box back.
		if !b.contains(pt, origin) {
			b.ctrl.PointerLeave()
			p.active = nil
		}
		return true, b, false
	case tea.MouseActionRelease:
		if p.active == nil {
			return false, nil, false
		}
		b := p.active
		dragged := b.ctrl.PointerUp()
		p.active = nil
		return true, b, !dragged
	}
	return false, nil, false
}

// IsDragging returns true if a box is being dragged.
func (p *pointer) IsDragging() bool {
	return p.active != nil
}

func (p *pointer) startDrag(b *box, pt drag.Point) {
	if p.active != nil && p.active != b {
		p.active.ctrl.PointerLeave()
	}
	p.active = b
	b.ctrl.PointerDown(pt)
}

// stopDrag ends the active session, if any.
func (p *pointer) stopDrag() {
	if p.active != nil {
		p.active.ctrl.PointerLeave()
		p.active = nil
	}
}
