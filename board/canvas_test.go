package board

import "testing"

func TestOverlay(t *testing.T) {
	bg := blank(5, 2)

	tests := []struct {
		name string
		fg   string
		x, y int
		want string
	}{
		{"inside", "ab", 1, 1, "     \n ab  "},
		{"clipped right", "abc", 3, 0, "   ab\n     "},
		{"clipped left", "abc", -1, 0, "bc   \n     "},
		{"clipped bottom", "ab\ncd", 0, 1, "     \nab   "},
		{"off canvas", "ab", 9, 0, bg},
		{"above canvas", "ab", 0, -3, bg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlay(bg, tt.fg, tt.x, tt.y); got != tt.want {
				t.Errorf("overlay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlank(t *testing.T) {
	if got := blank(3, 2); got != "   \n   " {
		t.Errorf("blank(3, 2) = %q", got)
	}
	if got := blank(0, 4); got != "" {
		t.Errorf("blank(0, 4) = %q", got)
	}
}
