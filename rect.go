package viewport

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in float64 coordinates.
// Min is the top-left corner, Max the bottom-right. A Rect is well-formed
// when Min.X <= Max.X and Min.Y <= Max.Y; operations on malformed rects
// report them as empty rather than panicking.
type Rect struct {
	Min, Max Point
}

// R is a convenience function to create a Rect from edge coordinates.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, s.Min.X), Y: math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, s.Max.X), Y: math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Intersect returns the largest rectangle contained in both r and s.
// The result may be empty; check with Empty before using its extent.
func (r Rect) Intersect(s Rect) Rect {
	return Rect{
		Min: Point{X: math.Max(r.Min.X, s.Min.X), Y: math.Max(r.Min.Y, s.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, s.Max.X), Y: math.Min(r.Max.Y, s.Max.Y)},
	}
}

// Translate returns the rectangle shifted by the vector p.
func (r Rect) Translate(p Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Scale returns the rectangle with both corners multiplied by s.
// Scaling is about the origin, matching the canvas convention where the
// image is anchored at (0, 0).
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}

// ContainsInterior reports whether p lies strictly inside r. Points on
// the boundary are excluded, matching the pointer-over-image test used
// for zoom gating.
func (r Rect) ContainsInterior(p Point) bool {
	return r.Min.X < p.X && p.X < r.Max.X && r.Min.Y < p.Y && p.Y < r.Max.Y
}

// ToImageRect converts r to an integer image.Rectangle. The minimum
// corner is floored and the maximum corner is ceiled, so the result
// covers every pixel the float rectangle touches.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}
