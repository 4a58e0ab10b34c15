package game

import "testing"

func TestOpposite(t *testing.T) {
	cases := []struct {
		d, want Dir
	}{
		{DirUp, DirDown},
		{DirRight, DirLeft},
		{DirDown, DirUp},
		{DirLeft, DirRight},
	}
	for _, c := range cases {
		if got := c.d.Opposite(); got != c.want {
			t.Errorf("Opposite(%v) = %v, want %v", c.d, got, c.want)
		}
		if got := c.d.Opposite().Opposite(); got != c.d {
			t.Errorf("double Opposite(%v) = %v, want identity", c.d, got)
		}
	}
}

func TestDelta(t *testing.T) {
	cases := []struct {
		d      Dir
		dx, dy int
	}{
		{DirUp, 0, 1},
		{DirDown, 0, -1},
		{DirRight, 1, 0},
		{DirLeft, -1, 0},
	}
	for _, c := range cases {
		dx, dy := c.d.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("Delta(%v) = (%d,%d), want (%d,%d)", c.d, dx, dy, c.dx, c.dy)
		}
	}
}

func TestDirBetween(t *testing.T) {
	a := Coord{X: 3, Y: 3}
	cases := []struct {
		b    Coord
		want Dir
		ok   bool
	}{
		{Coord{4, 3}, DirRight, true},
		{Coord{2, 3}, DirLeft, true},
		{Coord{3, 4}, DirUp, true},
		{Coord{3, 2}, DirDown, true},
		{Coord{4, 4}, 0, false}, // diagonal
		{Coord{3, 3}, 0, false}, // identical
		{Coord{5, 3}, 0, false}, // two cells away
	}
	for _, c := range cases {
		d, ok := DirBetween(a, c.b)
		if ok != c.ok {
			t.Errorf("DirBetween(%v,%v) ok = %v, want %v", a, c.b, ok, c.ok)
			continue
		}
		if ok && d != c.want {
			t.Errorf("DirBetween(%v,%v) = %v, want %v", a, c.b, d, c.want)
		}
	}
}

func TestStepInvertsDirBetween(t *testing.T) {
	c := Coord{X: -2, Y: 7}
	for _, d := range []Dir{DirUp, DirRight, DirDown, DirLeft} {
		got, ok := DirBetween(c, c.Step(d))
		if !ok || got != d {
			t.Errorf("DirBetween(c, c.Step(%v)) = %v,%v", d, got, ok)
		}
	}
}
