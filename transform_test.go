package quadpath

import (
	"math"
	"slices"
	"testing"

	"honnef.co/go/curve"
)

func TestToQuadraticsPassthrough(t *testing.T) {
	events := []PathEvent{
		MoveTo(curve.Pt(0, 0)),
		LineTo(curve.Pt(1, 0)),
		LineTo(curve.Pt(1, 1)),
		QuadTo(curve.Pt(0.5, 1.5), curve.Pt(0, 1)),
		ClosePath(),
		MoveTo(curve.Pt(5, 5)),
		LineTo(curve.Pt(6, 5)),
		ClosePath(),
	}
	got := slices.Collect(ToQuadratics(slices.Values(events), 1e-2))
	diff(t, events, got)
}

func TestToQuadraticsCubic(t *testing.T) {
	const tolerance = 0.01
	c := curve.CubicBez{P0: curve.Pt(0, 0), P1: curve.Pt(0, 1), P2: curve.Pt(1, 1), P3: curve.Pt(1, 0)}
	events := []PathEvent{
		MoveTo(c.P0),
		CubicTo(c.P1, c.P2, c.P3),
	}
	got := slices.Collect(ToQuadratics(slices.Values(events), tolerance))

	if got[0] != events[0] {
		t.Fatalf("got %s as the first event, want %s", got[0], events[0])
	}
	if len(got) < 2 {
		t.Fatal("cubic event produced no quadratics")
	}
	last := c.P0
	for _, ev := range got[1:] {
		if ev.Kind != QuadToKind {
			t.Fatalf("got %s, want a quadratic event", ev)
		}
		q := curve.QuadBez{P0: last, P1: ev.P0, P2: ev.P1}
		const n = 16
		for j := range n + 1 {
			pt := q.Eval(float64(j) / n)
			distSq, _ := c.Nearest(pt, 1e-9)
			if limit := 2 * tolerance; distSq > limit*limit {
				t.Fatalf("point %s is %g away from the cubic, want at most %g",
					pt, math.Sqrt(distSq), limit)
			}
		}
		last = ev.P1
	}
	if last != c.P3 {
		t.Errorf("expansion ends at %s, want %s", last, c.P3)
	}
}

func TestToQuadraticsArc(t *testing.T) {
	// An arc event's end point is the arc's center, AngleFrom its
	// x-rotation, AngleTo its sweep, and the start angle derives from the
	// current point. With the current point at (2, 0) and the center at
	// the origin this is a quarter arc starting at angle π.
	const tolerance = 1e-3
	events := []PathEvent{
		MoveTo(curve.Pt(2, 0)),
		ArcTo(curve.Pt(0, 0), curve.Vec(1, 1), 0, math.Pi/2),
	}
	got := slices.Collect(ToQuadratics(slices.Values(events), tolerance))

	forward := AppendArcQuads(nil, curve.Arc{
		Center:     curve.Pt(0, 0),
		Radii:      curve.Vec(1, 1),
		StartAngle: math.Pi,
		SweepAngle: math.Pi / 2,
	}, tolerance)

	want := []PathEvent{events[0]}
	for i := len(forward) - 1; i >= 0; i-- {
		want = append(want, QuadTo(forward[i].P1, forward[i].P2))
	}
	diff(t, want, got)
}

func TestToQuadraticsKinds(t *testing.T) {
	events := []PathEvent{
		MoveTo(curve.Pt(0, 0)),
		CubicTo(curve.Pt(0, 1), curve.Pt(1, 1), curve.Pt(1, 0)),
		LineTo(curve.Pt(2, 0)),
		ArcTo(curve.Pt(0, 0), curve.Vec(1, 1), 0, math.Pi/2),
		ClosePath(),
	}
	var passthrough []PathEvent
	for ev := range ToQuadratics(slices.Values(events), 1e-2) {
		switch ev.Kind {
		case CubicToKind, ArcToKind:
			t.Fatalf("got %s, want no cubic or arc events in the output", ev)
		case MoveToKind, LineToKind, ClosePathKind:
			passthrough = append(passthrough, ev)
		}
	}
	want := []PathEvent{events[0], events[2], events[4]}
	diff(t, want, passthrough)
}

func TestToQuadraticsEarlyStop(t *testing.T) {
	// The caller may stop pulling at any point.
	events := []PathEvent{
		MoveTo(curve.Pt(0, 0)),
		CubicTo(curve.Pt(0, 1), curve.Pt(1, 1), curve.Pt(1, 0)),
		LineTo(curve.Pt(2, 0)),
	}
	var n int
	for range ToQuadratics(slices.Values(events), 1e-6) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("pulled %d events, want 2", n)
	}
}

func TestTransformPath(t *testing.T) {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.CubicTo(curve.Pt(0, 1), curve.Pt(1, 1), curve.Pt(1, 0))
	p.LineTo(curve.Pt(2, 0))
	p.ClosePath()

	out := TransformPath(p, 1e-2)
	if len(out) < len(p) {
		t.Fatalf("got %d elements, want at least %d", len(out), len(p))
	}
	for _, el := range out {
		if el.Kind == curve.CubicToKind {
			t.Fatalf("got %s, want no cubic elements in the output", el)
		}
	}
	if out[0] != curve.MoveTo(curve.Pt(0, 0)) {
		t.Errorf("got %s as the first element, want the original move-to", out[0])
	}
	if last := out[len(out)-1]; last.Kind != curve.ClosePathKind {
		t.Errorf("got %s as the last element, want the original close", last)
	}
}

func TestEventsElementsRoundtrip(t *testing.T) {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.QuadTo(curve.Pt(1, 2), curve.Pt(2, 0))
	p.CubicTo(curve.Pt(3, 1), curve.Pt(4, -1), curve.Pt(5, 0))
	p.LineTo(curve.Pt(6, 0))
	p.ClosePath()

	got := slices.Collect(Elements(Events(p.Elements())))
	diff(t, []curve.PathElement(p), got)
}
