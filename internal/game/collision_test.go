package game

import "testing"

func TestBorderExactAtBoundary(t *testing.T) {
	b := FieldBounds()
	cases := []struct {
		head Coord
		out  bool
	}{
		// Outermost legal cells.
		{Coord{0, 0}, false},
		{Coord{FieldWidth - 1, 0}, false},
		{Coord{0, FieldHeight - 1}, false},
		{Coord{FieldWidth - 1, FieldHeight - 1}, false},
		{Coord{4, FieldHeight - 1}, false},
		// One cell beyond.
		{Coord{-1, 0}, true},
		{Coord{FieldWidth, 0}, true},
		{Coord{0, -1}, true},
		{Coord{0, FieldHeight}, true},
		{Coord{4, FieldHeight}, true},
	}
	for _, c := range cases {
		if got := OutsideBounds(c.head, b); got != c.out {
			t.Errorf("OutsideBounds(%v) = %v, want %v", c.head, got, c.out)
		}
	}
}

func TestHitsBody(t *testing.T) {
	body := []Coord{{3, 3}, {3, 4}, {4, 4}}
	if !HitsBody(Coord{3, 4}, body) {
		t.Error("head on body cell not detected")
	}
	if HitsBody(Coord{2, 3}, body) {
		t.Error("free cell reported as collision")
	}
	if HitsBody(Coord{3, 3}, nil) {
		t.Error("empty body reported collision")
	}
}

// A head may pass through a cell its tail vacates in the same tick:
// the check runs on post-step positions, so chasing the tail is legal.
func TestTailChaseIsNotCollision(t *testing.T) {
	// 4-cell snake bent into a square; the head turns into the cell the
	// tail occupies, and the tail vacates it in the same step.
	s := NewSnake(Coord{X: 1, Y: 0}, DirRight)
	for i := 0; i < 2; i++ {
		s.PendingGrowth = true
		s.Step()
	}
	// Chain: (3,0) (2,0) (1,0) (0,0)
	s.RequestDir(DirUp)
	s.Step() // (3,1) (3,0) (2,0) (1,0)
	s.RequestDir(DirLeft)
	s.Step() // (2,1) (3,1) (3,0) (2,0)
	s.RequestDir(DirDown)
	s.Step() // head enters (2,0) as the tail leaves it

	if s.Head() != (Coord{X: 2, Y: 0}) {
		t.Fatalf("head at %v, want (2,0)", s.Head())
	}
	body := s.BodyCoords(nil)
	if HitsBody(s.Head(), body) {
		t.Fatalf("tail chase flagged as collision: head %v body %v", s.Head(), body)
	}
}
