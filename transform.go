package quadpath

import (
	"iter"

	"honnef.co/go/curve"
)

// ToQuadratics rewrites a path event stream so that it contains no cubic and
// no arc events. Every cubic event is replaced, in place, by the run of
// quadratic events produced by [ApproxCubic] for it; every arc event by the
// run produced by [ApproxArc]. All other events pass through verbatim and in
// their original relative order.
//
// The transformer tracks the current drawing point across events, starting
// at the origin; a well-formed stream starts each subpath with a move-to.
// Closing a subpath does not move the current point back to the subpath's
// start.
//
// An arc event is interpreted against the current point the way the
// Pathfinder partitioner interprets it: its end point becomes the arc's
// center, AngleFrom its x-rotation, AngleTo its sweep, and the start angle
// is the angle from the current point to the end point, less AngleFrom.
//
// The returned sequence is lazy and single-use if events is single-use.
func ToQuadratics(events iter.Seq[PathEvent], tolerance float64) iter.Seq[PathEvent] {
	return func(yield func(PathEvent) bool) {
		var last curve.Point
		for ev := range events {
			switch ev.Kind {
			case MoveToKind, LineToKind:
				last = ev.P0
				if !yield(ev) {
					return
				}
			case QuadToKind:
				last = ev.P1
				if !yield(ev) {
					return
				}
			case CubicToKind:
				c := curve.CubicBez{P0: last, P1: ev.P0, P2: ev.P1, P3: ev.P2}
				last = ev.P2
				quads := ApproxCubic(c, tolerance)
				for q, ok := quads.Next(); ok; q, ok = quads.Next() {
					if !yield(QuadTo(q.P1, q.P2)) {
						return
					}
				}
			case ArcToKind:
				a := curve.Arc{
					Center:     ev.P0,
					Radii:      ev.Radii,
					StartAngle: ev.P0.Sub(last).Angle() - ev.AngleFrom,
					SweepAngle: ev.AngleTo,
					XRotation:  ev.AngleFrom,
				}
				last = ev.P0
				quads := ApproxArc(a, tolerance)
				for q, ok := quads.Next(); ok; q, ok = quads.Next() {
					if !yield(QuadTo(q.P1, q.P2)) {
						return
					}
				}
			case ClosePathKind:
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// TransformPath replaces every cubic segment of p with its quadratic
// approximation and returns the rewritten path. The result contains only
// move-to, line-to, quadratic and close elements.
func TransformPath(p curve.BezPath, tolerance float64) curve.BezPath {
	out := make(curve.BezPath, 0, len(p))
	for el := range Elements(ToQuadratics(Events(p.Elements()), tolerance)) {
		out.Push(el)
	}
	return out
}
