package scribble

import (
	"fmt"
	"math"
)

// Point is an integer pixel coordinate.
//
// Points are line endpoints and may lie outside any pixmap; writes through
// them are clipped, never rejected.
type Point struct {
	X, Y int64
}

// Pt is a convenience function to create a Point.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Sample is a pointer position as reported by the input source.
type Sample struct {
	X, Y float64
}

// Pixel returns the pixel the sample falls on, rounding each coordinate
// half away from zero.
func (s Sample) Pixel() Point {
	return Point{
		X: int64(math.Round(s.X)),
		Y: int64(math.Round(s.Y)),
	}
}
