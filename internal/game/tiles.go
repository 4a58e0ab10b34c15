package game

// TileKind is the visual shape category of a body segment, chosen so
// adjacent segments render as one continuous pipe. Purely cosmetic:
// recomputed from the chain snapshot every tick, no persistent state.
type TileKind int

const (
	// TileNone is the fallback for a topologically inconsistent window
	// (non-adjacent neighbours). Indicates a construction bug; rendered
	// as a plain filled cell rather than treated as a failure.
	TileNone TileKind = iota

	TileHorizontal
	TileVertical

	TileCornerDownRight
	TileCornerLeftDown
	TileCornerUpLeft
	TileCornerRightUp

	TileTailUp
	TileTailRight
	TileTailDown
	TileTailLeft
)

func (k TileKind) String() string {
	switch k {
	case TileHorizontal:
		return "horizontal"
	case TileVertical:
		return "vertical"
	case TileCornerDownRight:
		return "corner-down-right"
	case TileCornerLeftDown:
		return "corner-left-down"
	case TileCornerUpLeft:
		return "corner-up-left"
	case TileCornerRightUp:
		return "corner-right-up"
	case TileTailUp:
		return "tail-up"
	case TileTailRight:
		return "tail-right"
	case TileTailDown:
		return "tail-down"
	case TileTailLeft:
		return "tail-left"
	}
	return "none"
}

// ClassifySegment picks the tile for an interior segment from its
// traversal neighbours. The incoming connection is the side the
// predecessor attaches on (the opposite of the direction prev→cur);
// the outgoing connection is the direction cur→next. Each corner is
// symmetric under swapping the pair: a turn looks the same from both
// traversal directions.
func ClassifySegment(prev, cur, next Coord) TileKind {
	fromPrev, ok := DirBetween(prev, cur)
	if !ok {
		return TileNone
	}
	toNext, ok := DirBetween(cur, next)
	if !ok {
		return TileNone
	}
	in := fromPrev.Opposite()
	out := toNext

	switch {
	case (in == DirLeft || in == DirRight) && (out == DirLeft || out == DirRight):
		return TileHorizontal
	case (in == DirUp || in == DirDown) && (out == DirUp || out == DirDown):
		return TileVertical

	case in == DirDown && out == DirRight, in == DirRight && out == DirDown:
		return TileCornerDownRight
	case in == DirLeft && out == DirDown, in == DirDown && out == DirLeft:
		return TileCornerLeftDown
	case in == DirUp && out == DirLeft, in == DirLeft && out == DirUp:
		return TileCornerUpLeft
	case in == DirRight && out == DirUp, in == DirUp && out == DirRight:
		return TileCornerRightUp
	}
	return TileNone
}

// ClassifyTail picks the tail cap from the direction its predecessor
// points at it.
func ClassifyTail(prev, tail Coord) TileKind {
	d, ok := DirBetween(prev, tail)
	if !ok {
		return TileNone
	}
	switch d {
	case DirUp:
		return TileTailUp
	case DirRight:
		return TileTailRight
	case DirDown:
		return TileTailDown
	case DirLeft:
		return TileTailLeft
	}
	return TileNone
}

// TileCell pairs a segment position with its classified shape.
type TileCell struct {
	Pos  Coord
	Tile TileKind
}

// ClassifyChain tags every non-head cell of the head-to-tail traversal
// and appends the results to buf. The head's visual orientation comes
// from its movement direction, not from this classifier, so cells[0]
// is skipped. Idempotent for a given chain snapshot.
func ClassifyChain(cells []ChainCell, buf []TileCell) []TileCell {
	n := len(cells)
	for i := 1; i < n-1; i++ {
		k := ClassifySegment(cells[i-1].Pos, cells[i].Pos, cells[i+1].Pos)
		buf = append(buf, TileCell{Pos: cells[i].Pos, Tile: k})
	}
	if n >= 2 {
		k := ClassifyTail(cells[n-2].Pos, cells[n-1].Pos)
		buf = append(buf, TileCell{Pos: cells[n-1].Pos, Tile: k})
	}
	return buf
}
