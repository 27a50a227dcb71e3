// Package core provides fundamental types and utilities for the shooter:
// geometry, the screen buffer, colors, and input frames. It contains no
// external dependencies (especially no Bubble Tea) to keep game logic pure
// and testable.
package core

// Vec2 is a 2D vector in world space. World units map 1:1 to screen cells,
// but positions and velocities are continuous.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// RectF is an axis-aligned bounding box in world space, used by the
// collision engine. X, Y is the top-left corner.
type RectF struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports whether two boxes overlap. Edge-adjacent boxes
// (touching but not overlapping) do not intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersection returns the overlap of two boxes and whether they overlap
// at all. The second return is false for edge-adjacent or disjoint boxes.
func (r RectF) Intersection(other RectF) (RectF, bool) {
	x := MaxF(r.X, other.X)
	y := MaxF(r.Y, other.Y)
	right := MinF(r.Right(), other.Right())
	bottom := MinF(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return RectF{}, false
	}
	return RectF{X: x, Y: y, Width: right - x, Height: bottom - y}, true
}

// Rect is an axis-aligned rectangle in screen space (character cells).
// Used for drawing; world-space collision uses RectF.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CellRect converts a world-space box to screen cells by truncation.
func CellRect(r RectF) Rect {
	return Rect{X: int(r.X), Y: int(r.Y), W: int(r.Width), H: int(r.Height)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// MinF returns the smaller of two float64 values.
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxF returns the larger of two float64 values.
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
