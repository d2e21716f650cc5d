package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 20x6", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if g := s.GetGlyph(x, y); g.Rune != ' ' || g.Color != ColorDefault {
				t.Fatalf("expected blank glyph at (%d, %d), got %+v", x, y, g)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(2, 3, '●', ColorRed)
	g := s.GetGlyph(2, 3)
	if g.Rune != '●' || g.Color != ColorRed {
		t.Errorf("GetGlyph(2, 3) = %+v, expected red ●", g)
	}

	// Out of bounds writes are ignored and reads return blank.
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(0, 99, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'o', ColorGreen)
	s.Clear()

	if g := s.GetGlyph(1, 1); g.Rune != ' ' || g.Color != ColorDefault {
		t.Errorf("Clear() left %+v", g)
	}
}

func TestScreenDrawTextCenteredUnicode(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "●●●")

	if got := s.Row(0); got != "    ●●●    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox produced:\n%s", s.String())
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(1, 1, 2, 2), '#')

	if s.Row(1) != " ## " || s.Row(2) != " ## " || s.Row(0) != "    " {
		t.Errorf("FillRect produced:\n%s", s.String())
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'A', ColorBlue)
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if g := s.GetGlyph(1, 1); g.Rune != 'A' || g.Color != ColorBlue {
		t.Errorf("content lost on resize: %+v", g)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q", s.Row(5))
	}
}
