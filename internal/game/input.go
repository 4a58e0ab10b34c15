package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// steerKeys maps held movement keys to direction requests. WASD and the
// arrow keys are equivalent.
var steerKeys = []struct {
	key glfw.Key
	dir Dir
}{
	{glfw.KeyW, DirUp},
	{glfw.KeyUp, DirUp},
	{glfw.KeyD, DirRight},
	{glfw.KeyRight, DirRight},
	{glfw.KeyS, DirDown},
	{glfw.KeyDown, DirDown},
	{glfw.KeyA, DirLeft},
	{glfw.KeyLeft, DirLeft},
}

// PollSteering forwards held movement keys to the snake's input buffer.
// Requests may arrive at any rate; the buffer keeps the last accepted
// one and the reversal filter drops the rest.
func PollSteering(window *glfw.Window, snake *Snake) {
	for _, sk := range steerKeys {
		if window.GetKey(sk.key) == glfw.Press {
			snake.RequestDir(sk.dir)
		}
	}
}
