package board

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type footer struct {
	help help.Model
}

func newFooter() *footer {
	return &footer{help: help.New()}
}

func (f *footer) view(width int, status string, keys keyMap) string {
	mouseInfo := "Mouse: disabled"
	if zone.Enabled() {
		mouseInfo = "Mouse: enabled"
	}
	f.help.Width = width
	info := debugStyle.Render(fmt.Sprintf("%s | %s", status, mouseInfo))
	return lipgloss.JoinVertical(lipgloss.Left,
		footerStyle.Width(width).MaxWidth(width).Render(info),
		f.help.View(keys),
	)
}
