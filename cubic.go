package quadpath

import (
	"iter"

	"honnef.co/go/curve"
)

// maxIterations caps the total number of subdivision steps one [CubicQuads]
// spends on its cubic, across all sub-segments. Once the cap is reached,
// remaining sub-segments are emitted as-is, so the approximation stays
// continuous and spans the cubic's endpoints but may exceed the tolerance.
const maxIterations = 32

// CubicQuads approximates a single cubic Bézier segment with a finite
// sequence of quadratic Bézier segments, by adaptive subdivision.
//
// The emitted quadratics cover the cubic left to right; consecutive segments
// share endpoints, the first starts at the cubic's start point and the last
// ends at its end point. Unless the iteration cap was exhausted, each
// quadratic is within tolerance of the sub-segment it replaces.
//
// A CubicQuads is a single-use iterator; once Next has returned false, it
// stays exhausted.
type CubicQuads struct {
	// LIFO of sub-segments still to be emitted, rightmost first pushed.
	pending   []curve.CubicBez
	tolerance float64
	iteration int
}

// ApproxCubic returns an iterator over quadratic segments approximating c
// to within tolerance, which must be positive.
func ApproxCubic(c curve.CubicBez, tolerance float64) *CubicQuads {
	return &CubicQuads{
		pending:   []curve.CubicBez{c},
		tolerance: tolerance,
	}
}

// Next returns the next quadratic segment of the approximation. The second
// return value reports whether a segment was produced; it is false once the
// approximation is complete.
func (q *CubicQuads) Next() (curve.QuadBez, bool) {
	n := len(q.pending)
	if n == 0 {
		return curve.QuadBez{}, false
	}
	c := q.pending[n-1]
	q.pending = q.pending[:n-1]

	for q.iteration < maxIterations {
		q.iteration++

		// Control-polygon distance between the cubic and its best
		// single-quadratic fit. See Sederberg § 2.6, "Distance Between
		// Two Bézier Curves".
		d0 := curve.Vec2(c.P0).Sub(curve.Vec2(c.P1).Mul(3)).Add(curve.Vec2(c.P2).Mul(3).Sub(curve.Vec2(c.P3)))
		d1 := curve.Vec2(c.P1).Mul(3).Sub(curve.Vec2(c.P0)).Add(curve.Vec2(c.P3).Sub(curve.Vec2(c.P2).Mul(3)))
		if max(d0.Hypot(), d1.Hypot())*(1.0/6.0) < q.tolerance {
			break
		}

		a, b := c.Subdivide()
		q.pending = append(q.pending, b)
		c = a
	}

	// The quadratic maintaining the cubic's endpoint tangents: its control
	// point is the midpoint of the two projected cubic control points.
	p0 := curve.Vec2(c.P1).Mul(3).Sub(curve.Vec2(c.P0)).Mul(0.5)
	p1 := curve.Vec2(c.P2).Mul(3).Sub(curve.Vec2(c.P3)).Mul(0.5)
	return curve.QuadBez{P0: c.P0, P1: curve.Point(p0.Lerp(p1, 0.5)), P2: c.P3}, true
}

// CubicToQuads returns the quadratic approximation of c as a sequence.
//
// The sequence is single-use and always produces at least one value.
func CubicToQuads(c curve.CubicBez, tolerance float64) iter.Seq[curve.QuadBez] {
	return func(yield func(curve.QuadBez) bool) {
		quads := ApproxCubic(c, tolerance)
		for q, ok := quads.Next(); ok; q, ok = quads.Next() {
			if !yield(q) {
				return
			}
		}
	}
}
