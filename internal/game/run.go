package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Run opens the window and drives the frame loop until quit. Input,
// tick and render all run on this one OS thread.
func Run() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	session := NewGameSession(seed)
	session.Bus().Subscribe(EventFoodEaten, func(Event) {
		fmt.Printf("score: %d\n", session.Score)
	})
	session.Bus().Subscribe(EventGameOver, func(e Event) {
		fmt.Printf("game over at %v, score %d\n", e.Pos, session.Score)
	})

	input := NewInput()
	border := borderSprites()

	// Reusable render buffers.
	var tiles []TileCell
	var spriteBuf, glowBuf []float32
	lastTitle := ""

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		// Clamp dt so a stall (window drag, debugger) cannot produce a
		// huge simulation jump.
		dt := clampF(now-last, 0, 0.1)
		last = now

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyQ) {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StatePlaying:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.TogglePause()
				break
			}
			PollSteering(window, session.Snake)
			session.Update(dt)

		case StatePaused:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.TogglePause()
			}

		case StateGameOver:
			if input.JustPressed(window, glfw.KeySpace) {
				session.Restart()
			}
		}

		if title := sessionTitle(session); title != lastTitle {
			window.SetTitle(title)
			lastTitle = title
		}

		cam := FitField(fbW, fbH)
		tiles, spriteBuf, glowBuf = sessionSprites(session, tiles, spriteBuf, glowBuf)

		rend.BeginFrame(fbW, fbH)
		rend.DrawTiles(border, cam, fbW, fbH)
		rend.DrawGlow(glowBuf, cam, fbW, fbH)
		rend.DrawTiles(spriteBuf, cam, fbW, fbH)

		window.SwapBuffers()
	}
}

// sessionTitle renders score and state into the window title; the game
// draws no text of its own.
func sessionTitle(s *GameSession) string {
	switch s.State {
	case StatePaused:
		return fmt.Sprintf("%s - paused - score %d", WindowTitle, s.Score)
	case StateGameOver:
		return fmt.Sprintf("%s - game over - score %d - space restarts", WindowTitle, s.Score)
	}
	return fmt.Sprintf("%s - score %d", WindowTitle, s.Score)
}
