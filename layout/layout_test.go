package layout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileylov/dragboard/drag"
)

const sample = `
title = "test board"
mode = "vertical"

[[box]]
id = "a"
label = "A"
left = "10px"
top = "5"

[[box]]
id = "b"
left = "auto"
mode = "horizontal"
width = 12
`

func TestDecode(t *testing.T) {
	l, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if l.Title != "test board" {
		t.Errorf("title = %q", l.Title)
	}
	if len(l.Boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(l.Boxes))
	}
	a, b := l.Boxes[0], l.Boxes[1]
	if a.ID != "a" || a.Left != "10px" || a.Top != "5" {
		t.Errorf("box a = %+v", a)
	}
	if b.Left != "auto" || b.Top != "" || b.Width != 12 {
		t.Errorf("box b = %+v", b)
	}
	if got := a.EffectiveMode("", l.Mode); got != "vertical" {
		t.Errorf("box a mode = %q, want layout default", got)
	}
	if got := b.EffectiveMode("free", l.Mode); got != "horizontal" {
		t.Errorf("box b mode = %q, want its own", got)
	}
}

func TestDecodeIntegerCoords(t *testing.T) {
	l, err := Decode(strings.NewReader(`
[[box]]
id = "a"
left = 10
top = -5

[[box]]
id = "b"
left = 2.5
top = "7px"
`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	a, b := l.Boxes[0], l.Boxes[1]
	if a.Left != "10" || a.Top != "-5" {
		t.Errorf("box a = %+v", a)
	}
	if b.Left != "2.5" || b.Top != "7px" {
		t.Errorf("box b = %+v", b)
	}
}

func TestDecodeRejectsNonScalarCoord(t *testing.T) {
	_, err := Decode(strings.NewReader("[[box]]\nid = \"a\"\nleft = [1, 2]\n"))
	if err == nil || !strings.Contains(err.Error(), "coordinate") {
		t.Errorf("error = %v, want coordinate error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr string
	}{
		{"empty", Layout{}, "no boxes"},
		{"missing id", Layout{Boxes: []Box{{Label: "x"}}}, "no id"},
		{"duplicate", Layout{Boxes: []Box{{ID: "a"}, {ID: "a"}}}, "duplicate"},
		{"negative size", Layout{Boxes: []Box{{ID: "a", Width: -1}}}, "negative size"},
		{"bad box mode", Layout{Boxes: []Box{{ID: "a", Mode: "diagonal"}}}, "diagonal"},
		{"bad default mode", Layout{Mode: "up", Boxes: []Box{{ID: "a"}}}, "up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateModeIsInvalidConfiguration(t *testing.T) {
	l := Layout{Boxes: []Box{{ID: "a", Mode: "diagonal"}}}
	if err := l.Validate(); !errors.Is(err, drag.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestValidateAcceptsMalformedPositions(t *testing.T) {
	l := Layout{Boxes: []Box{{ID: "a", Left: "nope", Top: ""}}}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate(): %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")

	want := Default()
	want.Boxes[0].Left = "17"
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Boxes) != len(want.Boxes) {
		t.Fatalf("got %d boxes, want %d", len(got.Boxes), len(want.Boxes))
	}
	for i := range want.Boxes {
		if got.Boxes[i] != want.Boxes[i] {
			t.Errorf("box %d = %+v, want %+v", i, got.Boxes[i], want.Boxes[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not exist", err)
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(strings.NewReader("[[box]\nid = "))
	if err == nil || !strings.Contains(err.Error(), "decode layout:") {
		t.Errorf("error = %v, want decode layout prefix", err)
	}
}

func TestClone(t *testing.T) {
	l := Default()
	c := l.Clone()
	c.Boxes[0].Left = "999"
	if l.Boxes[0].Left == "999" {
		t.Error("Clone shares boxes with the original")
	}
}
