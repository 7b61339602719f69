package drag

// Mode restricts which axes an element may move along.
type Mode int

const (
	Free Mode = iota
	Horizontal
	Vertical
)

var modeNames = map[Mode]string{
	Free:       "free",
	Horizontal: "horizontal",
	Vertical:   "vertical",
}

// ParseMode returns the Mode named s. Names are matched exactly. Anything
// else, including the empty string, is a *ConfigError.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return Free, &ConfigError{Field: "mode", Value: s}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// MovesX reports whether the mode lets the left coordinate change.
func (m Mode) MovesX() bool { return m == Free || m == Horizontal }

// MovesY reports whether the mode lets the top coordinate change.
func (m Mode) MovesY() bool { return m == Free || m == Vertical }
