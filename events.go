package quadpath

import (
	"fmt"
	"iter"

	"honnef.co/go/curve"
)

type PathEventKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathEventKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Draw an elliptical arc ending at the point.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

// PathEvent is one element of a path event stream.
//
// It mirrors [curve.PathElement], with an additional arc variant. An arc
// event carries its end point in P0, the ellipse radii in Radii, and two
// angles; the arc's start point is implied by the preceding event, like the
// start points of line, quadratic, and cubic events.
type PathEvent struct {
	Kind PathEventKind
	P0   curve.Point
	P1   curve.Point
	P2   curve.Point
	// The following fields are only used by ArcToKind.
	Radii     curve.Vec2
	AngleFrom float64
	AngleTo   float64
}

func (ev PathEvent) String() string {
	switch ev.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", ev.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", ev.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", ev.P0, ev.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", ev.P0, ev.P1, ev.P2)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %s, %g, %g)", ev.P0, ev.Radii, ev.AngleFrom, ev.AngleTo)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathEvent"
	}
}

func MoveTo(pt curve.Point) PathEvent {
	return PathEvent{Kind: MoveToKind, P0: pt}
}

func LineTo(pt curve.Point) PathEvent {
	return PathEvent{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 curve.Point) PathEvent {
	return PathEvent{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 curve.Point) PathEvent {
	return PathEvent{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ArcTo(pt curve.Point, radii curve.Vec2, angleFrom, angleTo float64) PathEvent {
	return PathEvent{Kind: ArcToKind, P0: pt, Radii: radii, AngleFrom: angleFrom, AngleTo: angleTo}
}

func ClosePath() PathEvent {
	return PathEvent{Kind: ClosePathKind}
}

// EndPoint returns the point the event leaves the path at. It returns false
// for ClosePathKind, which carries no point.
func (ev PathEvent) EndPoint() (curve.Point, bool) {
	switch ev.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return ev.P0, true
	case QuadToKind:
		return ev.P1, true
	case CubicToKind:
		return ev.P2, true
	default:
		return curve.Point{}, false
	}
}

// Events lifts a sequence of path elements into a sequence of path events.
// The lift is lossless; no arc events are produced.
func Events(elements iter.Seq[curve.PathElement]) iter.Seq[PathEvent] {
	return func(yield func(PathEvent) bool) {
		for el := range elements {
			var ev PathEvent
			switch el.Kind {
			case curve.MoveToKind:
				ev = MoveTo(el.P0)
			case curve.LineToKind:
				ev = LineTo(el.P0)
			case curve.QuadToKind:
				ev = QuadTo(el.P0, el.P1)
			case curve.CubicToKind:
				ev = CubicTo(el.P0, el.P1, el.P2)
			case curve.ClosePathKind:
				ev = ClosePath()
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Elements lowers a sequence of path events into a sequence of path
// elements. Arc events have no element counterpart; feed the sequence
// through [ToQuadratics] first. Elements panics if it encounters an arc
// event.
func Elements(events iter.Seq[PathEvent]) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for ev := range events {
			var el curve.PathElement
			switch ev.Kind {
			case MoveToKind:
				el = curve.MoveTo(ev.P0)
			case LineToKind:
				el = curve.LineTo(ev.P0)
			case QuadToKind:
				el = curve.QuadTo(ev.P0, ev.P1)
			case CubicToKind:
				el = curve.CubicTo(ev.P0, ev.P1, ev.P2)
			case ArcToKind:
				panic("quadpath: cannot lower arc event to a path element")
			case ClosePathKind:
				el = curve.ClosePath()
			}
			if !yield(el) {
				return
			}
		}
	}
}
