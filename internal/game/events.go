package game

type EventType int

const (
	EventFoodEaten EventType = iota
	EventGameOver
)

type Event struct {
	Type EventType
	Pos  Coord // cell the event happened on (head position)
}

type EventHandler func(Event)

// EventBus is a synchronous subscribe/emit fan-out. Handlers run on the
// emitting goroutine; the whole game is single-threaded per frame.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
