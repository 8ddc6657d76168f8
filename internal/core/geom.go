// Package core provides fundamental types and utilities for the pickup arena.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point2D is a position on the ground plane. The vertical axis is ignored,
// so Z plays the role of the second planar coordinate.
type Point2D struct {
	X, Z float64
}

// Pt is shorthand for constructing a Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Z: p.Z + q.Z}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Z: p.Z - q.Z}
}

// Scale multiplies both coordinates by k.
func (p Point2D) Scale(k float64) Point2D {
	return Point2D{X: p.X * k, Z: p.Z * k}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point2D) Len() float64 {
	return math.Hypot(p.X, p.Z)
}

// Dist returns the Euclidean distance between p and q.
func (p Point2D) Dist(q Point2D) float64 {
	return math.Hypot(p.X-q.X, p.Z-q.Z)
}

// DistSq returns the squared distance between p and q.
// Comparisons against a squared radius avoid the square root.
func (p Point2D) DistSq(q Point2D) float64 {
	dx := p.X - q.X
	dz := p.Z - q.Z
	return dx*dx + dz*dz
}

// Rect represents an axis-aligned box of screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
