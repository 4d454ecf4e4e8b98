package scribble

import (
	"iter"
	"math"
)

// Line returns the pixels approximating the segment from→to, in drawing
// order, both endpoints included.
//
// The segment is stepped one pixel per unit along its dominant axis (x
// when |dx| == |dy|). The other coordinate advances by the exact slope in
// floating point and is snapped with RoundToward, keyed on the axis delta.
// Two segments sharing an endpoint therefore meet without a gap and
// without a doubled corner pixel.
func Line(from, to Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := to.X - from.X
		dy := to.Y - from.Y

		var n int64
		var i, j float64
		if abs64(dy) > abs64(dx) {
			j = 1.0
			if dy < 0 {
				j = -1.0
			}
			i = j * (float64(dx) / float64(dy))
			n = abs64(dy) + 1
		} else {
			i = 1.0
			if dx < 0 {
				i = -1.0
			}
			// dx == 0 here means from == to: a single pixel, no slope.
			if dx != 0 {
				j = i * float64(dy) / float64(dx)
			}
			n = abs64(dx) + 1
		}

		x := float64(from.X)
		y := float64(from.Y)
		for ; n > 0; n-- {
			if !yield(Point{X: RoundToward(x, dx), Y: RoundToward(y, dy)}) {
				return
			}
			x += i
			y += j
		}
	}
}

// DrawLine draws the segment from→to with c at full opacity.
// Pixels outside the pixmap are clipped.
func (p *Pixmap) DrawLine(from, to Point, c Color) {
	for pt := range Line(from, to) {
		p.SetPixel(pt.X, pt.Y, c.R, c.G, c.B, 255)
	}
}

// RoundToward rounds v to an integer, breaking exact .5 ties in the
// direction the axis is travelling: toward +Inf when axisDelta >= 0 and
// toward -Inf otherwise. Values that are not ties round to nearest.
//
// The fractional part is measured on the magnitude of v, so negative
// values mirror positive ones.
func RoundToward(v float64, axisDelta int64) int64 {
	t := math.Trunc(v)
	whole := int64(t)
	frac := math.Abs(v - t)
	forward := axisDelta >= 0

	if v >= 0 {
		if frac > 0.5 || (forward && frac == 0.5) {
			return whole + 1
		}
		return whole
	}

	if frac > 0.5 || (!forward && frac == 0.5) {
		return whole - 1
	}
	return whole
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
