package game

// Bounds is the inclusive rectangle of legal head cells.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// FieldBounds returns the play field rectangle from the configured
// dimensions.
func FieldBounds() Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: FieldWidth - 1, MaxY: FieldHeight - 1}
}

// OutsideBounds reports whether head lies outside the inclusive
// rectangle b. The outermost legal cell is not a violation; one cell
// beyond is.
func OutsideBounds(head Coord, b Bounds) bool {
	return head.X < b.MinX || head.X > b.MaxX || head.Y < b.MinY || head.Y > b.MaxY
}

// HitsBody reports whether head occupies any body cell. Callers must
// pass post-step positions: passing through a soon-to-be-vacated cell
// mid-shift is legal and never observed here.
func HitsBody(head Coord, body []Coord) bool {
	for _, c := range body {
		if c == head {
			return true
		}
	}
	return false
}
