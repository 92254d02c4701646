package core

// Shape is the kind of primitive in a draw request.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// DrawRequest asks the presentation layer to draw one primitive in virtual
// screen coordinates. For circles X, Y is the center and Radius is used.
type DrawRequest struct {
	Shape  Shape
	X, Y   float64
	W, H   float64
	Radius float64
	Color  Color
	Glyph  rune // Preferred fill glyph for cell renderers, 0 = default
}

// RectRequest builds a rectangle draw request from bounds.
func RectRequest(r Rect, c Color, glyph rune) DrawRequest {
	return DrawRequest{Shape: ShapeRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c, Glyph: glyph}
}

// CircleRequest builds a circle draw request.
func CircleRequest(cx, cy, radius float64, c Color, glyph rune) DrawRequest {
	return DrawRequest{Shape: ShapeCircle, X: cx, Y: cy, Radius: radius, Color: c, Glyph: glyph}
}

// HUD carries the values shown in the heads-up display.
type HUD struct {
	Score     int
	HealthPct float64 // 0..100
	Hits      int
	MaxHits   int
	Kills     int
	Elapsed   float64
	Phase     Phase
	Paused    bool
	Antidote  bool // An antidote is on screen
}
