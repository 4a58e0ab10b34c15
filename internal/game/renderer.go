package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite connection-mask bits consumed by the tile fragment shader.
const (
	maskUp     = 1
	maskRight  = 2
	maskDown   = 4
	maskLeft   = 8
	maskSquare = 16
	maskNone   = 0
)

// MaxSprites bounds the streaming VBO. Field + border + snake + glow
// stays far below this.
const MaxSprites = 4096

// glOffset converts a byte offset to unsafe.Pointer for GL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// tileMask maps a classified tile to the shader's connection mask.
// Tail caps connect toward their predecessor, which sits opposite the
// direction the cap points.
func tileMask(k TileKind) float32 {
	switch k {
	case TileHorizontal:
		return maskLeft | maskRight
	case TileVertical:
		return maskUp | maskDown
	case TileCornerDownRight:
		return maskDown | maskRight
	case TileCornerLeftDown:
		return maskLeft | maskDown
	case TileCornerUpLeft:
		return maskUp | maskLeft
	case TileCornerRightUp:
		return maskRight | maskUp
	case TileTailUp:
		return maskDown
	case TileTailRight:
		return maskLeft
	case TileTailDown:
		return maskUp
	case TileTailLeft:
		return maskRight
	}
	return maskNone
}

// headMask connects the head sprite toward its neck, so the head cap
// orientation follows the movement direction alone.
func headMask(facing Dir) float32 {
	switch facing {
	case DirUp:
		return maskDown
	case DirRight:
		return maskLeft
	case DirDown:
		return maskUp
	case DirLeft:
		return maskRight
	}
	return maskNone
}

// appendSprite queues one point sprite in the shared 8-float layout:
// [x, y, size, r, g, b, a, mask].
func appendSprite(buf []float32, pos Coord, size float32, col RGB, alpha, mask float32) []float32 {
	return append(buf,
		float32(pos.X), float32(pos.Y), size,
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, alpha,
		mask,
	)
}

type Renderer struct {
	tileProg uint32
	glowProg uint32
	vao      uint32
	vbo      uint32

	tUCamera     int32
	tUZoom       int32
	tUResolution int32

	gUCamera     int32
	gUZoom       int32
	gUResolution int32
}

func NewRenderer() (*Renderer, error) {
	tileProg, err := linkProgram(tileVertSrc, tileFragSrc)
	if err != nil {
		return nil, fmt.Errorf("tile program: %w", err)
	}
	glowProg, err := linkProgram(tileVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(tileProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{tileProg: tileProg, glowProg: glowProg}

	// Streaming VBO for point sprites, 8 floats each.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aCellPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aMask (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(tileProg)
	r.tUCamera = gl.GetUniformLocation(tileProg, gl.Str("uCamera\x00"))
	r.tUZoom = gl.GetUniformLocation(tileProg, gl.Str("uZoom\x00"))
	r.tUResolution = gl.GetUniformLocation(tileProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.gUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.gUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.gUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.tileProg)
	gl.DeleteProgram(r.glowProg)
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTiles renders tile sprites with standard alpha blending.
// buf format: [x, y, size, r, g, b, a, mask] * N.
func (r *Renderer) DrawTiles(buf []float32, cam Camera, fbW, fbH int) {
	r.draw(r.tileProg, r.tUCamera, r.tUZoom, r.tUResolution, buf, cam, fbW, fbH, false)
}

// DrawGlow renders light sprites with additive blending and radial
// falloff; RGB should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlow(buf []float32, cam Camera, fbW, fbH int) {
	r.draw(r.glowProg, r.gUCamera, r.gUZoom, r.gUResolution, buf, cam, fbW, fbH, true)
}

func (r *Renderer) draw(prog uint32, uCam, uZoom, uRes int32, buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSprites {
		count = MaxSprites
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(uCam, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(uZoom, float32(cam.Zoom))
	gl.Uniform2f(uRes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// borderSprites returns the static ring of border cells around the
// field. Built once at startup.
func borderSprites() []float32 {
	buf := make([]float32, 0, (2*(FieldWidth+2)+2*FieldHeight)*8)
	for x := -1; x <= FieldWidth; x++ {
		buf = appendSprite(buf, Coord{X: x, Y: -1}, 1.0, Palette.Border, 1, maskSquare)
		buf = appendSprite(buf, Coord{X: x, Y: FieldHeight}, 1.0, Palette.Border, 1, maskSquare)
	}
	for y := 0; y < FieldHeight; y++ {
		buf = appendSprite(buf, Coord{X: -1, Y: y}, 1.0, Palette.Border, 1, maskSquare)
		buf = appendSprite(buf, Coord{X: FieldWidth, Y: y}, 1.0, Palette.Border, 1, maskSquare)
	}
	return buf
}

// sessionSprites rebuilds the per-frame sprite buffers from the session
// snapshot: snake head + classified body tiles, then the food pellet as
// a glow. Reuses and returns the passed buffers.
func sessionSprites(s *GameSession, tiles []TileCell, spriteBuf, glowBuf []float32) ([]TileCell, []float32, []float32) {
	tiles = s.TileCells(tiles[:0])
	spriteBuf = spriteBuf[:0]
	glowBuf = glowBuf[:0]

	spriteBuf = appendSprite(spriteBuf, s.Snake.Head(), 1.0, Palette.Snake, 1, headMask(s.Snake.LastDir))
	for _, tc := range tiles {
		spriteBuf = appendSprite(spriteBuf, tc.Pos, 1.0, Palette.SnakeDark, 1, tileMask(tc.Tile))
	}

	glowBuf = appendSprite(glowBuf, s.Food.Pos, 1.8, Palette.Food, 1, maskNone)
	spriteBuf = appendSprite(spriteBuf, s.Food.Pos, 0.6, Palette.Food, 1, maskSquare)

	return tiles, spriteBuf, glowBuf
}
