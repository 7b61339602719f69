package drag

import "testing"

func TestParseCoord(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"100", 100, true},
		{"105px", 105, true},
		{"  -3", -3, true},
		{"+7em", 7, true},
		{"12.9", 12, true},
		{"", 0, false},
		{"auto", 0, false},
		{"px10", 0, false},
		{"-", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCoord(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCoord(%q) = %d, %v; want %d, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestApply(t *testing.T) {
	cur := Position{Left: 100, Top: 50}
	off := Offset{X: 5, Y: -10}

	tests := []struct {
		mode Mode
		want Position
	}{
		{Free, Position{Left: 105, Top: 40}},
		{Horizontal, Position{Left: 105, Top: 50}},
		{Vertical, Position{Left: 100, Top: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := Apply(cur, off, tt.mode); got != tt.want {
				t.Errorf("Apply(%v, %v, %v) = %v, want %v", cur, off, tt.mode, got, tt.want)
			}
		})
	}
}

func TestReadPositionFallback(t *testing.T) {
	el := newTestElement("", "12px")

	pos, ok := ReadPosition(el, Free)
	if ok {
		t.Error("expected ok=false for an unset left")
	}
	if pos != (Position{Left: 0, Top: 12}) {
		t.Errorf("got %v, want {0 12}", pos)
	}
}

func TestReadPositionIgnoresUnusedAxis(t *testing.T) {
	el := newTestElement("40", "auto")

	if _, ok := ReadPosition(el, Horizontal); !ok {
		t.Error("horizontal mode reported a malformed top it never uses")
	}
	if _, ok := ReadPosition(el, Vertical); ok {
		t.Error("vertical mode accepted a malformed top")
	}
}

func TestWritePositionOnlyTouchesPermittedAxes(t *testing.T) {
	el := newTestElement("garbage", "also garbage")

	WritePosition(el, Position{Left: 3, Top: 4}, Horizontal)

	if el.Style(PropLeft) != "3" {
		t.Errorf("left = %q, want 3", el.Style(PropLeft))
	}
	if el.Style(PropTop) != "also garbage" {
		t.Errorf("top was rewritten to %q", el.Style(PropTop))
	}
	if el.writes[PropTop] != 0 {
		t.Errorf("top written %d times, want 0", el.writes[PropTop])
	}
}
