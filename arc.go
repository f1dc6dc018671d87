package quadpath

import (
	"math"

	"honnef.co/go/curve"
)

// AppendArcQuads appends quadratic Bézier segments approximating the arc to
// buf and returns the extended buffer. Segments are generated in curve
// order, from the arc's start angle towards its end.
//
// Each segment spans a bounded angular step, with its control point at the
// intersection of the ellipse's endpoint tangents; the step count scales
// with the fourth root of the radius-to-tolerance ratio.
func AppendArcQuads(buf []curve.QuadBez, a curve.Arc, tolerance float64) []curve.QuadBez {
	scaledErr := max(a.Radii.X, a.Radii.Y) / tolerance
	// Number of subdivisions per ellipse based on error tolerance.
	// Note: this may slightly underestimate the error for quadrants.
	nErr := max(math.Pow(12.18*scaledErr, 1.0/4.0), 3.999_999)
	n := max(math.Ceil(nErr*math.Abs(a.SweepAngle)*(1.0/(2.0*math.Pi))), 1)

	angleStep := a.SweepAngle / n
	// The tangent lines at a step's endpoints meet at the step's midpoint
	// sample, scaled by 1/cos(step/2) away from the center.
	proj := 1.0 / math.Cos(0.5*angleStep)
	angle0 := a.StartAngle
	p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := sampleEllipse(a.Radii, a.XRotation, 0.5*(angle0+angle1)).Mul(proj)
		p2 := sampleEllipse(a.Radii, a.XRotation, angle1)

		buf = append(buf, curve.QuadBez{
			P0: a.Center.Translate(p0),
			P1: a.Center.Translate(p1),
			P2: a.Center.Translate(p2),
		})

		angle0 = angle1
		p0 = p2
	}
	return buf
}

// Take the ellipse radii, how the radii are rotated, and an angle, and
// return a point on the ellipse, relative to its center.
func sampleEllipse(radii curve.Vec2, xRotation float64, angle float64) curve.Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(curve.Vec2{X: u, Y: v}, xRotation)
}

// Rotate pt about the origin by angle radians.
func rotatePt(pt curve.Vec2, angle float64) curve.Vec2 {
	sin, cos := math.Sincos(angle)
	return curve.Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// ArcQuads approximates a single elliptical arc segment with a finite
// sequence of quadratic Bézier segments.
//
// The arc is decomposed eagerly on construction. Segments are handed out
// from the end of the decomposition, so the observed order is the reverse of
// the order [AppendArcQuads] generates them in; callers that rely on forward
// curve direction must account for this.
//
// An ArcQuads is a single-use iterator; once Next has returned false, it
// stays exhausted.
type ArcQuads struct {
	segments []curve.QuadBez
}

// ApproxArc returns an iterator over quadratic segments approximating a to
// within tolerance, which must be positive.
func ApproxArc(a curve.Arc, tolerance float64) *ArcQuads {
	return &ArcQuads{segments: AppendArcQuads(nil, a, tolerance)}
}

// Next returns the next quadratic segment of the approximation. The second
// return value reports whether a segment was produced; it is false once the
// approximation is complete.
func (q *ArcQuads) Next() (curve.QuadBez, bool) {
	n := len(q.segments)
	if n == 0 {
		return curve.QuadBez{}, false
	}
	seg := q.segments[n-1]
	q.segments = q.segments[:n-1]
	return seg, true
}
