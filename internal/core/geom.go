// Package core provides fundamental types for the game: geometry
// primitives, colors, input frames, and the renderer contract. It
// contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Vec is a 2D vector in logical field units.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Bounded is implemented by every shape that exposes axis-aligned
// edges. Collision code works against this interface and stays
// shape-agnostic.
type Bounded interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
}

// Shape holds the state shared by all drawable shapes: a position, an
// origin offset relative to the top-left of the extents, and a fill
// color. Edges are derived from position minus origin.
type Shape struct {
	Pos    Vec
	Origin Vec
	Fill   RGBA
}

// X returns the shape's x position.
func (s Shape) X() float64 { return s.Pos.X }

// Y returns the shape's y position.
func (s Shape) Y() float64 { return s.Pos.Y }

// Move translates the shape by the given delta.
func (s *Shape) Move(d Vec) {
	s.Pos = s.Pos.Add(d)
}

// Rect is an axis-aligned rectangle. Width and height must be positive.
type Rect struct {
	Shape
	W, H float64
}

// NewRect creates a rectangle centered on (x, y).
func NewRect(x, y, w, h float64, fill RGBA) Rect {
	return Rect{
		Shape: Shape{
			Pos:    Vec{X: x, Y: y},
			Origin: Vec{X: w / 2, Y: h / 2},
			Fill:   fill,
		},
		W: w,
		H: h,
	}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.Pos.X - r.Origin.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left() + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Pos.Y - r.Origin.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top() + r.H }

// Circle is a circle shape. Radius must be positive.
type Circle struct {
	Shape
	Radius float64
}

// NewCircle creates a circle centered on (x, y).
func NewCircle(x, y, radius float64, fill RGBA) Circle {
	return Circle{
		Shape: Shape{
			Pos:    Vec{X: x, Y: y},
			Origin: Vec{X: radius, Y: radius},
			Fill:   fill,
		},
		Radius: radius,
	}
}

// Left returns the x-coordinate of the left edge.
func (c Circle) Left() float64 { return c.Pos.X - c.Radius }

// Right returns the x-coordinate of the right edge.
func (c Circle) Right() float64 { return c.Pos.X + c.Radius }

// Top returns the y-coordinate of the top edge.
func (c Circle) Top() float64 { return c.Pos.Y - c.Radius }

// Bottom returns the y-coordinate of the bottom edge.
func (c Circle) Bottom() float64 { return c.Pos.Y + c.Radius }

// Intersects returns true if the bounding boxes of a and b overlap on
// both axes. Bounds are inclusive, so touching edges count as an
// intersection. The test is symmetric in its arguments.
func Intersects(a, b Bounded) bool {
	return a.Right() >= b.Left() && a.Left() <= b.Right() &&
		a.Bottom() >= b.Top() && a.Top() <= b.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
