package game

// Snake is the head state plus the linked chain of body segments.
// Exactly one mutator (Step) ever touches segment coordinates.
type Snake struct {
	chain *Chain

	// Dir is the direction the head will move on the next step; LastDir
	// is the direction actually applied on the previous step and is the
	// reference for rejecting 180° reversals.
	Dir     Dir
	LastDir Dir

	// PendingGrowth is set when food was eaten and not yet materialized
	// into a new tail segment. Cleared by the step that appends it.
	PendingGrowth bool
}

// NewSnake creates the fixed two-segment starting layout: the head at
// headPos facing dir, one body segment directly behind it.
func NewSnake(headPos Coord, dir Dir) *Snake {
	s := &Snake{
		chain:   NewChain(headPos),
		Dir:     dir,
		LastDir: dir,
	}
	s.chain.AppendTail(headPos.Step(dir.Opposite()))
	return s
}

// Chain exposes the segment chain for traversal.
func (s *Snake) Chain() *Chain { return s.chain }

// Head returns the head's current cell.
func (s *Snake) Head() Coord { return s.chain.Pos(s.chain.Head()) }

// Len returns the live segment count, head included.
func (s *Snake) Len() int { return s.chain.Len() }

// RequestDir buffers a desired direction for the next step. A request
// that would reverse into the neck is dropped silently, as normal input
// noise rather than an error. Later accepted requests overwrite earlier
// ones.
func (s *Snake) RequestDir(d Dir) {
	if d == s.LastDir.Opposite() {
		return
	}
	s.Dir = d
}

// Step advances the head one cell in Dir and shifts every body segment
// to its predecessor's pre-step position with a single rolling carry:
// O(n) time, O(1) extra space. If growth is pending, a new tail segment
// materializes at the cell the old tail vacated, keeping the chain a
// contiguous simple path.
func (s *Snake) Step() {
	head := s.chain.Head()
	carry := s.chain.Pos(head)
	s.chain.SetPos(head, carry.Step(s.Dir))
	s.LastDir = s.Dir

	for id := s.chain.Next(head); id != NoSeg; id = s.chain.Next(id) {
		old := s.chain.Pos(id)
		s.chain.SetPos(id, carry)
		carry = old
	}

	if s.PendingGrowth {
		s.PendingGrowth = false
		s.chain.AppendTail(carry)
	}
}

// BodyCoords appends the coordinates of every non-head segment to buf
// and returns it. Used by the self-collision check after a step.
func (s *Snake) BodyCoords(buf []Coord) []Coord {
	for id := s.chain.Next(s.chain.Head()); id != NoSeg; id = s.chain.Next(id) {
		buf = append(buf, s.chain.Pos(id))
	}
	return buf
}
