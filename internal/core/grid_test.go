package core

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		coord    int
		limit    int
		expected int
	}{
		{"inside", 3, 10, 3},
		{"zero", 0, 10, 0},
		{"one past end", 10, 10, 0},
		{"minus one", -1, 10, 9},
		{"far negative", -21, 10, 9},
		{"far positive", 25, 10, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.coord, tc.limit); got != tc.expected {
				t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.coord, tc.limit, got, tc.expected)
			}
		})
	}
}

func TestGridWrapMove(t *testing.T) {
	g := NewGrid(16, 20)

	tests := []struct {
		name     string
		from     Cell
		heading  Heading
		expected Cell
	}{
		{"east off right edge", Cell{X: 15, Y: 0}, East, Cell{X: 0, Y: 0}},
		{"west off left edge", Cell{X: 0, Y: 0}, West, Cell{X: 15, Y: 0}},
		{"north off top edge", Cell{X: 4, Y: 0}, North, Cell{X: 4, Y: 19}},
		{"south off bottom edge", Cell{X: 4, Y: 19}, South, Cell{X: 4, Y: 0}},
		{"plain east", Cell{X: 3, Y: 3}, East, Cell{X: 4, Y: 3}},
		{"plain north", Cell{X: 3, Y: 3}, North, Cell{X: 3, Y: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.WrapMove(tc.from, tc.heading)
			if got != tc.expected {
				t.Errorf("WrapMove(%v, %v) = %v, expected %v", tc.from, tc.heading, got, tc.expected)
			}
			if !g.Contains(got) {
				t.Errorf("WrapMove result %v is out of bounds", got)
			}
		})
	}
}

func TestGridWrapMoveTotal(t *testing.T) {
	g := NewGrid(5, 3)
	for x := -2; x < 7; x++ {
		for y := -2; y < 5; y++ {
			for _, h := range []Heading{North, South, East, West} {
				c := g.WrapMove(Cell{X: x, Y: y}, h)
				if !g.Contains(c) {
					t.Fatalf("WrapMove(%d,%d,%v) = %v out of bounds", x, y, h, c)
				}
			}
		}
	}
}

func TestHeadingOpposite(t *testing.T) {
	pairs := map[Heading]Heading{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
	for h, opp := range pairs {
		if h.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", h, h.Opposite(), opp)
		}
		if !h.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) should be true", h, opp)
		}
		if h.IsOpposite(h) {
			t.Errorf("%v.IsOpposite(%v) should be false", h, h)
		}
	}
}

func TestParseHeading(t *testing.T) {
	for _, s := range []string{"east", "right", "e"} {
		h, err := ParseHeading(s)
		if err != nil || h != East {
			t.Errorf("ParseHeading(%q) = %v, %v", s, h, err)
		}
	}
	if _, err := ParseHeading("sideways"); err == nil {
		t.Error("ParseHeading should reject unknown names")
	}
}
