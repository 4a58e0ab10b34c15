package game

import "fmt"

// Coord is a discrete cell position on the play grid.
// X grows to the right, Y grows upward. Validity against the play field
// is a collision concern; the type itself is unbounded.
type Coord struct {
	X, Y int
}

// Step returns the cell one move away in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
