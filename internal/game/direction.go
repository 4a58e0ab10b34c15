package game

// Dir is one of the four grid directions.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "invalid"
}

// Opposite returns the 180° reverse of d.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Delta returns the unit cell offset of a move in direction d.
// Up is +Y, matching the grid's math orientation.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

// DirBetween returns the direction that moves a to b, or ok=false when
// the cells are not grid-adjacent (including diagonal or identical).
func DirBetween(a, b Coord) (Dir, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	switch {
	case dx == 1 && dy == 0:
		return DirRight, true
	case dx == -1 && dy == 0:
		return DirLeft, true
	case dx == 0 && dy == 1:
		return DirUp, true
	case dx == 0 && dy == -1:
		return DirDown, true
	}
	return 0, false
}
