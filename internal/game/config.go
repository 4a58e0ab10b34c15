package game

// Play field dimensions (in grid cells). Legal cells are
// 0..FieldWidth-1 x 0..FieldHeight-1; the border ring sits just outside.
const (
	FieldWidth  = 10
	FieldHeight = 10
)

// Movement cadence: seconds of game time between snake steps.
// Simulation rate is fixed regardless of render frame rate.
const TurnDelay = 0.8

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Gridsnake"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Palette groups the fixed game colors.
var Palette = struct {
	Background RGB
	Border     RGB
	Snake      RGB
	SnakeDark  RGB
	Food       RGB
}{
	Background: RGB{24, 30, 24},
	Border:     RGB{150, 150, 150},
	Snake:      RGB{76, 204, 76},
	SnakeDark:  RGB{52, 150, 52},
	Food:       RGB{204, 76, 76},
}
