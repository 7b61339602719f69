package board

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(headerHeight)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle).
			Padding(0, 1)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)
)

const headerHeight = 1

type action int

const (
	actionNone action = iota
	actionReset
	actionInspect
	actionCopy
)

type headerButton struct {
	label  string
	action action
}

type header struct {
	id      string
	title   string
	buttons []headerButton
}

func newHeader(prefix, title string) *header {
	return &header{
		id:    prefix + "header_",
		title: title,
		buttons: []headerButton{
			{label: "Reset", action: actionReset},
			{label: "Inspect", action: actionInspect},
			{label: "Copy", action: actionCopy},
		},
	}
}

// click returns the action of the button released over, if any.
func (h *header) click(msg tea.MouseMsg) action {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return actionNone
	}
	for i, b := range h.buttons {
		if zone.Get(h.buttonID(i)).InBounds(msg) {
			return b.action
		}
	}
	return actionNone
}

// view renders the header at width. active marks buttons whose state is on.
func (h *header) view(width int, active func(action) bool) string {
	var buttonViews []string
	for i, button := range h.buttons {
		style := headerButtonStyle
		if active(button.action) {
			style = headerButtonActiveStyle
		}
		buttonViews = append(buttonViews, zone.Mark(h.buttonID(i), style.Render(button.label)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	maxTitleWidth := width - buttonsWidth - 2
	if maxTitleWidth < 0 {
		maxTitleWidth = 0
	}
	titleText := h.title
	if lipgloss.Width(titleText) > maxTitleWidth {
		runes := []rune(titleText)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxTitleWidth {
			runes = runes[:len(runes)-1]
		}
		if maxTitleWidth > 0 {
			titleText = string(runes) + "…"
		} else {
			titleText = ""
		}
	}
	title := titleStyle.Render(titleText)

	spacingWidth := width - lipgloss.Width(title) - buttonsWidth
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.MaxWidth(width).Render(content)
}

func (h *header) buttonID(index int) string {
	return h.id + "button_" + strconv.Itoa(index)
}
