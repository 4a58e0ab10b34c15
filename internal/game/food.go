package game

// FoodSpawner owns the single food pellet: it places and relocates the
// pellet and raises the growth signal when the head lands on it. The
// movement engine itself never touches food.
type FoodSpawner struct {
	Pos Coord
	rng *Rand
}

func NewFoodSpawner(seed uint64) *FoodSpawner {
	return &FoodSpawner{rng: NewRand(seed)}
}

// Place moves the pellet to a random free field cell, skipping cells
// the snake occupies. Falls back to the raw roll when the field is
// nearly full rather than looping forever.
func (f *FoodSpawner) Place(snake *Snake) {
	for range FieldWidth * FieldHeight {
		p := Coord{X: f.rng.Intn(FieldWidth), Y: f.rng.Intn(FieldHeight)}
		if !f.occupied(p, snake) {
			f.Pos = p
			return
		}
	}
	f.Pos = Coord{X: f.rng.Intn(FieldWidth), Y: f.rng.Intn(FieldHeight)}
}

func (f *FoodSpawner) occupied(p Coord, snake *Snake) bool {
	c := snake.Chain()
	for id := c.Head(); id != NoSeg; id = c.Next(id) {
		if c.Pos(id) == p {
			return true
		}
	}
	return false
}

// Check flags growth and relocates the pellet when the head has landed
// on it, emitting EventFoodEaten. Called after the post-move collision
// checks each tick.
func (f *FoodSpawner) Check(snake *Snake, bus *EventBus) {
	head := snake.Head()
	if head != f.Pos {
		return
	}
	snake.PendingGrowth = true
	f.Place(snake)
	bus.Emit(Event{Type: EventFoodEaten, Pos: head})
}
