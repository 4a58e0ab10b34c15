package game

// Camera maps cell space to screen space for the sprite shaders.
type Camera struct {
	X, Y float64 // cell space, camera centre
	Zoom float64 // screen pixels per cell unit
}

// FitField centres the camera on the play field (border ring included)
// and picks the largest zoom that keeps the whole field on screen.
func FitField(fbW, fbH int) Camera {
	// One border cell on each side, plus half a cell of breathing room.
	w := float64(FieldWidth) + 3.0
	h := float64(FieldHeight) + 3.0

	zx := float64(fbW) / w
	zy := float64(fbH) / h
	zoom := zx
	if zy < zoom {
		zoom = zy
	}

	return Camera{
		X:    float64(FieldWidth-1) / 2,
		Y:    float64(FieldHeight-1) / 2,
		Zoom: zoom,
	}
}
