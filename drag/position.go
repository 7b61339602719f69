package drag

import "strconv"

// Style properties read and written on an Element.
const (
	PropLeft = "left"
	PropTop  = "top"
)

// Position is an element's absolute position.
type Position struct {
	Left int
	Top  int
}

// Element is the boundary to the thing being dragged. Style returns the raw
// value of a layout property, which may be empty or malformed.
type Element interface {
	Style(prop string) string
	SetStyle(prop, value string)
}

// ParseCoord reads the leading integer of raw the way a browser's parseInt
// does: "105px" is 105 and " -3" is -3. The bool is false when raw has no
// leading digits, in which case the coordinate is 0.
func ParseCoord(raw string) (int, bool) {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	start := i
	if i < len(raw) && (raw[i] == '-' || raw[i] == '+') {
		i++
	}
	digits := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(raw[start:i])
	if err != nil {
		// out of range
		return 0, false
	}
	return n, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// FormatCoord is the inverse of ParseCoord for values written back.
func FormatCoord(n int) string {
	return strconv.Itoa(n)
}

// ReadPosition parses el's left and top. Missing or malformed axes read as
// 0; ok is false if that happened to an axis mode moves.
func ReadPosition(el Element, mode Mode) (pos Position, ok bool) {
	left, okLeft := ParseCoord(el.Style(PropLeft))
	top, okTop := ParseCoord(el.Style(PropTop))
	ok = (okLeft || !mode.MovesX()) && (okTop || !mode.MovesY())
	return Position{Left: left, Top: top}, ok
}

// Apply adds the components of off that mode permits to cur.
func Apply(cur Position, off Offset, mode Mode) Position {
	next := cur
	if mode.MovesX() {
		next.Left += off.X
	}
	if mode.MovesY() {
		next.Top += off.Y
	}
	return next
}

// WritePosition stores pos on el. Only the axes mode permits are written,
// so a constrained element keeps its other value untouched, malformed or
// not.
func WritePosition(el Element, pos Position, mode Mode) {
	if mode.MovesX() {
		el.SetStyle(PropLeft, FormatCoord(pos.Left))
	}
	if mode.MovesY() {
		el.SetStyle(PropTop, FormatCoord(pos.Top))
	}
}
