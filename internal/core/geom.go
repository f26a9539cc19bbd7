package core

// Span is a horizontal run of columns: [Pos, Pos+Width) in grid units.
// The tower engine uses spans for both the landed platform and the moving
// one; overlap between the two decides every landing.
type Span struct {
	Pos   int
	Width int
}

// NewSpan creates a span starting at pos with the given width.
func NewSpan(pos, width int) Span {
	return Span{Pos: pos, Width: width}
}

// End returns the exclusive right edge of the span.
func (s Span) End() int {
	return s.Pos + s.Width
}

// Contains reports whether the column lies inside the span.
func (s Span) Contains(col int) bool {
	return col >= s.Pos && col < s.End()
}

// Empty reports whether the span covers no columns.
func (s Span) Empty() bool {
	return s.Width <= 0
}

// Centered returns a span of the given width horizontally centered within
// total columns, flooring on odd remainders.
func Centered(width, total int) Span {
	return Span{Pos: (total - width) / 2, Width: width}
}

// Rect is an axis-aligned box in screen cells, used for overlay drawing.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
