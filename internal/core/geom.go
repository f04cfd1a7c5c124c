// Package core holds the value types shared by every layer of the runtime:
// grid addresses, rectangles, the generic Grid, held-input frames and the
// fixed timestep. It imports nothing outside the standard library.
package core

import "fmt"

// Vec2 is a grid cell address. X increases to the right, Y increases downward
// (row 0 is the first map row of a level file).
type Vec2 struct {
	X, Y int
}

// V is a convenience constructor for Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a new Vec2 offset by (dx, dy).
func (v Vec2) Add(dx, dy int) Vec2 {
	return Vec2{X: v.X + dx, Y: v.Y + dy}
}

// String returns a string representation of the coordinate.
func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Rect is an integer rectangle. It describes both sprite-sheet source regions
// and screen destinations.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
