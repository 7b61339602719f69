package board

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/dragboard/drag"
	"github.com/rileylov/dragboard/layout"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	boxSelectedStyle = boxStyle.
				Border(lipgloss.DoubleBorder())

	boxDraggingStyle = boxStyle.
				Border(lipgloss.ThickBorder()).
				Bold(true)

	boxInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"})
)

// box is a draggable element on the canvas. It satisfies drag.Element by
// keeping its left and top as raw style strings.
type box struct {
	id     string
	label  string
	width  int
	height int
	color  lipgloss.TerminalColor
	style  map[string]string

	ctrl  *drag.Controller
	last  drag.Event
	moves int
}

func newBox(spec layout.Box) *box {
	b := &box{
		id:     spec.ID,
		label:  spec.Label,
		width:  spec.Width,
		height: spec.Height,
		color:  highlight,
		style: map[string]string{
			drag.PropLeft: string(spec.Left),
			drag.PropTop:  string(spec.Top),
		},
	}
	if b.label == "" {
		b.label = spec.ID
	}
	if spec.Color != "" {
		b.color = lipgloss.Color(spec.Color)
	}
	return b
}

func (b *box) Style(prop string) string { return b.style[prop] }

func (b *box) SetStyle(prop, value string) { b.style[prop] = value }

// position is where the box is drawn; malformed values draw at 0 the same
// way they drag from 0.
func (b *box) position() drag.Position {
	pos, _ := drag.ReadPosition(b, drag.Free)
	return pos
}

func (b *box) render(selected bool) string {
	style := boxStyle
	switch {
	case b.ctrl != nil && b.ctrl.Active():
		style = boxDraggingStyle
	case selected:
		style = boxSelectedStyle
	}
	style = style.BorderForeground(b.color)
	if b.width > 0 {
		style = style.Width(b.width)
	}
	if b.height > 0 {
		style = style.Height(b.height)
	}

	mode := "free"
	if b.ctrl != nil {
		mode = b.ctrl.Mode().String()
	}
	info := boxInfoStyle.Render(fmt.Sprintf("%s %s,%s", mode, b.Style(drag.PropLeft), b.Style(drag.PropTop)))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, b.label, info))
}

// size is the rendered width and height of the box in cells.
func (b *box) size() (int, int) {
	r := b.render(false)
	return lipgloss.Width(r), lipgloss.Height(r)
}

// contains reports whether p, in screen cells, is over the box when the
// canvas starts at origin.
func (b *box) contains(p drag.Point, origin drag.Point) bool {
	pos := b.position()
	w, h := b.size()
	x0, y0 := origin.X+pos.Left, origin.Y+pos.Top
	return p.X >= x0 && p.X < x0+w && p.Y >= y0 && p.Y < y0+h
}
