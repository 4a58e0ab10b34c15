package game

type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// GameSession drives the per-tick pipeline and owns the state machine
// Playing → GameOver → (restart) → Playing, with Paused reachable from
// Playing. All simulation state lives here explicitly; stages read and
// write it through the session rather than ambient globals.
type GameSession struct {
	State  GameState
	Score  int
	Snake  *Snake
	Food   *FoodSpawner
	Bounds Bounds

	timer *TurnTimer
	bus   *EventBus

	// Reused per-tick buffers.
	cellBuf []ChainCell
	bodyBuf []Coord
}

func NewGameSession(seed uint64) *GameSession {
	s := &GameSession{
		Bounds: FieldBounds(),
		timer:  NewTurnTimer(TurnDelay),
		bus:    NewEventBus(),
		Food:   NewFoodSpawner(seed),
	}
	s.bus.Subscribe(EventFoodEaten, func(Event) { s.Score++ })
	s.bus.Subscribe(EventGameOver, func(Event) { s.State = StateGameOver })
	s.start()
	return s
}

// Bus exposes the session event bus so collaborators (renderer shell,
// sound, logging) can subscribe to food and game-over signals.
func (s *GameSession) Bus() *EventBus { return s.bus }

// start is the entry action into StatePlaying: discard the old chain,
// rebuild the fixed two-segment snake at the field centre facing right,
// zero the score, reset the turn timer and place food.
func (s *GameSession) start() {
	s.Snake = NewSnake(Coord{X: FieldWidth / 2, Y: FieldHeight / 2}, DirRight)
	s.Score = 0
	s.timer.Reset()
	s.Food.Place(s.Snake)
	s.State = StatePlaying
}

// Restart reinitializes the session after a game over.
func (s *GameSession) Restart() {
	if s.State != StateGameOver {
		return
	}
	s.start()
}

// TogglePause switches between Playing and Paused. The turn timer is
// simply not advanced while paused, so no elapsed time leaks into the
// accumulator.
func (s *GameSession) TogglePause() {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
	case StatePaused:
		s.State = StatePlaying
	}
}

// Update runs one frame of the tick pipeline: scheduler gate, movement,
// border check, self check, food check. Collisions read post-move
// positions, and food eaten this tick grows the snake on the next step.
// A game over halts further steps until Restart.
func (s *GameSession) Update(dt float64) {
	if s.State != StatePlaying {
		return
	}
	if !s.timer.Advance(dt) {
		return
	}

	s.Snake.Step()

	head := s.Snake.Head()
	if OutsideBounds(head, s.Bounds) {
		s.bus.Emit(Event{Type: EventGameOver, Pos: head})
		return
	}
	s.bodyBuf = s.Snake.BodyCoords(s.bodyBuf[:0])
	if HitsBody(head, s.bodyBuf) {
		s.bus.Emit(Event{Type: EventGameOver, Pos: head})
		return
	}

	s.Food.Check(s.Snake, s.bus)
}

// TileCells appends the ordered (coordinate, tile) sequence for every
// non-head segment to buf and returns it. Together with Snake.Head and
// Snake.LastDir this is the whole read-only render contract.
func (s *GameSession) TileCells(buf []TileCell) []TileCell {
	s.cellBuf = s.Snake.Chain().Traverse(s.cellBuf[:0])
	return ClassifyChain(s.cellBuf, buf)
}
