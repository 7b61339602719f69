// Package layout reads and writes board layouts as TOML.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/rileylov/dragboard/drag"
)

// Layout describes the boxes on a board.
type Layout struct {
	Title string `toml:"title"`
	// Mode is the default axis mode for boxes that don't set their own.
	Mode  string `toml:"mode,omitempty"`
	Boxes []Box  `toml:"box"`
}

// Box is one draggable element. Left and Top keep the raw text an element's
// style would hold.
type Box struct {
	ID     string `toml:"id"`
	Label  string `toml:"label,omitempty"`
	Left   Coord  `toml:"left"`
	Top    Coord  `toml:"top"`
	Width  int    `toml:"width,omitempty"`
	Height int    `toml:"height,omitempty"`
	Mode   string `toml:"mode,omitempty"`
	Color  string `toml:"color,omitempty"`
}

// Coord is a raw position value. In TOML it may be written as an integer
// (left = 10) or a string (left = "10px"); either way the text is kept and
// only parsed when the box is dragged.
type Coord string

// UnmarshalTOML implements toml.Unmarshaler.
func (c *Coord) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*c = Coord(v)
	case int64:
		*c = Coord(strconv.FormatInt(v, 10))
	case float64:
		*c = Coord(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("layout: coordinate must be an integer or a string, got %T", v)
	}
	return nil
}

// EffectiveMode resolves the box's mode against fallbacks, first non-empty
// wins. It returns "" when nothing is set.
func (b Box) EffectiveMode(fallbacks ...string) string {
	if b.Mode != "" {
		return b.Mode
	}
	for _, m := range fallbacks {
		if m != "" {
			return m
		}
	}
	return ""
}

// Decode reads and validates a layout.
func Decode(r io.Reader) (*Layout, error) {
	var l Layout
	if _, err := toml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and validates the layout file at path.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks ids, sizes and modes. Positions are not checked: an
// unparseable left or top reads as 0 when dragged.
func (l *Layout) Validate() error {
	if len(l.Boxes) == 0 {
		return errors.New("layout: no boxes")
	}
	if l.Mode != "" {
		if _, err := drag.ParseMode(l.Mode); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
	}
	seen := make(map[string]bool, len(l.Boxes))
	for i, b := range l.Boxes {
		if b.ID == "" {
			return fmt.Errorf("layout: box %d has no id", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("layout: duplicate box id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Width < 0 || b.Height < 0 {
			return fmt.Errorf("layout: box %q has negative size", b.ID)
		}
		if b.Mode != "" {
			if _, err := drag.ParseMode(b.Mode); err != nil {
				return fmt.Errorf("layout: box %q: %w", b.ID, err)
			}
		}
	}
	return nil
}

// Encode writes l as TOML.
func (l *Layout) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(l); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// String returns the TOML form of l, or "" if it cannot be encoded.
func (l *Layout) String() string {
	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Save writes l to path.
func (l *Layout) Save(path string) error {
	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout {
	c := *l
	c.Boxes = append([]Box(nil), l.Boxes...)
	return &c
}

// Default is the sample board: one box per axis mode, plus one whose
// position is unset.
func Default() *Layout {
	return &Layout{
		Title: "dragboard",
		Mode:  "free",
		Boxes: []Box{
			{ID: "free", Label: "drag me anywhere", Left: "4px", Top: "6px", Color: "#7D56F4"},
			{ID: "slider", Label: "left / right", Left: "40", Top: "3", Mode: "horizontal", Color: "#43BF6D"},
			{ID: "lift", Label: "up / down", Left: "64", Top: "1", Mode: "vertical", Color: "#F25D94"},
			{ID: "loose", Label: "no position yet", Color: "#EE6FF8"},
		},
	}
}
