// Package core provides fundamental types shared by every game: geometry,
// the screen buffer, input frames and the seeded random source.
// It has no terminal dependencies so game logic stays pure and testable.
package core

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies inside a w x h grid anchored at the origin.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Rect represents an axis-aligned box on the character grid.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned box in continuous playfield units.
// Pong and Space Invaders simulate in these units and only scale to
// characters when rendering.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports AABB overlap. Touching edges do not overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Viewport maps a continuous playfield onto a block of screen cells.
type Viewport struct {
	FieldW, FieldH float64
	Area           Rect
}

// ToCell converts playfield coordinates to a screen cell.
func (v Viewport) ToCell(x, y float64) (int, int) {
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	cx := int(math.Floor(x / v.FieldW * float64(v.Area.W)))
	cy := int(math.Floor(y / v.FieldH * float64(v.Area.H)))
	cx = Clamp(cx, 0, v.Area.W-1)
	cy = Clamp(cy, 0, v.Area.H-1)
	return v.Area.X + cx, v.Area.Y + cy
}

// ToRect converts a playfield box to the smallest covering block of cells.
// The result is always at least one cell in each dimension.
func (v Viewport) ToRect(r RectF) Rect {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1, y1 := v.ToCell(r.Right()-0.001, r.Bottom()-0.001)
	return NewRect(x0, y0, Max(x1-x0+1, 1), Max(y1-y0+1, 1))
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
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
