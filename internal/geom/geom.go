// Package geom provides viewport-space value types and clamping.
package geom

// Point is a position in viewport pixels, origin top-left.
type Point struct {
	X float64
	Y float64
}

// Size describes viewport dimensions in pixels.
type Size struct {
	W float64
	H float64
}

// Rect describes a rectangle using top-left origin and size.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Short returns the smaller of the two dimensions.
func (s Size) Short() float64 {
	if s.W < s.H {
		return s.W
	}
	return s.H
}

// Landscape reports whether width exceeds height.
func (s Size) Landscape() bool {
	return s.W > s.H
}

// Center returns the midpoint of the size treated as a rectangle at origin.
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}

// ClampToSize clamps a point to the [0,W] x [0,H] range, each axis independently.
func ClampToSize(p Point, s Size) Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > s.W {
		p.X = s.W
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > s.H {
		p.Y = s.H
	}
	return p
}
