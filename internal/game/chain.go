package game

// SegID is a stable handle to a segment in a Chain's arena.
type SegID int

// NoSeg marks the absence of a successor (the tail's next reference).
const NoSeg SegID = -1

// Segment is one body cell. Links run head to tail via arena indices
// rather than pointers, so traversal needs no ownership bookkeeping.
type Segment struct {
	Pos  Coord
	Next SegID
}

// Chain is the ordered head-to-tail sequence of snake segments, backed
// by a dense arena. Segments are only ever appended, never removed; a
// session restart discards the whole chain.
type Chain struct {
	segs []Segment
	head SegID
	tail SegID
}

// ChainCell is one (handle, coordinate) element of a traversal.
type ChainCell struct {
	ID  SegID
	Pos Coord
}

// NewChain creates a chain with a single head segment at pos.
func NewChain(pos Coord) *Chain {
	return &Chain{
		segs: []Segment{{Pos: pos, Next: NoSeg}},
		head: 0,
		tail: 0,
	}
}

// Head returns the head segment's handle.
func (c *Chain) Head() SegID { return c.head }

// Len returns the live segment count.
func (c *Chain) Len() int { return len(c.segs) }

// Pos returns the coordinate of segment id.
func (c *Chain) Pos(id SegID) Coord { return c.segs[id].Pos }

// SetPos moves segment id to pos.
func (c *Chain) SetPos(id SegID, pos Coord) { c.segs[id].Pos = pos }

// Next returns the successor handle of id, or NoSeg at the tail.
func (c *Chain) Next(id SegID) SegID { return c.segs[id].Next }

// AppendTail creates a segment at pos, links it as the current tail's
// successor and returns its handle.
func (c *Chain) AppendTail(pos Coord) SegID {
	id := SegID(len(c.segs))
	c.segs = append(c.segs, Segment{Pos: pos, Next: NoSeg})
	c.segs[c.tail].Next = id
	c.tail = id
	return id
}

// Traverse appends the head-to-tail (handle, coordinate) sequence to
// buf and returns it. Pass a reused slice to avoid per-tick allocation.
func (c *Chain) Traverse(buf []ChainCell) []ChainCell {
	for id := c.head; id != NoSeg; id = c.segs[id].Next {
		buf = append(buf, ChainCell{ID: id, Pos: c.segs[id].Pos})
	}
	return buf
}
