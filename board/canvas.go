package board

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// blank returns a width x height block of spaces.
func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// overlay paints fg over bg with its top-left corner at (x, y). Whatever
// falls outside bg is clipped. Both strings may contain ANSI sequences.
func overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	lines := strings.Split(bg, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}

	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		col := x
		if col < 0 {
			fl = ansi.TruncateLeft(fl, -col, "")
			col = 0
		}
		if col >= width {
			continue
		}
		fl = ansi.Truncate(fl, width-col, "")
		fw := ansi.StringWidth(fl)

		line := lines[row]
		left := ansi.Truncate(line, col, "")
		if pad := col - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, col+fw, "")
		lines[row] = left + fl + right
	}
	return strings.Join(lines, "\n")
}
