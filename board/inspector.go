package board

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/dragboard/drag"
)

var inspectorStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

// inspector lists every box with its raw position and last drag offset.
type inspector struct {
	table table.Model
}

func newInspector() inspector {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Mode", Width: 10},
		{Title: "Left", Width: 6},
		{Title: "Top", Width: 6},
		{Title: "dX", Width: 4},
		{Title: "dY", Width: 4},
		{Title: "Moves", Width: 6},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Cell
	t.SetStyles(s)

	return inspector{table: t}
}

func (in *inspector) refresh(boxes []*box) {
	rows := make([]table.Row, 0, len(boxes))
	for _, b := range boxes {
		rows = append(rows, table.Row{
			b.id,
			b.ctrl.Mode().String(),
			b.Style(drag.PropLeft),
			b.Style(drag.PropTop),
			strconv.Itoa(b.last.X),
			strconv.Itoa(b.last.Y),
			strconv.Itoa(b.moves),
		})
	}
	in.table.SetRows(rows)
	in.table.SetHeight(len(rows) + 2)
}

func (in *inspector) view() string {
	return inspectorStyle.Render(in.table.View())
}
