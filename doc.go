// Package quadpath rewrites vector path event streams so that they contain
// only lines and quadratic Béziers. It is meant as a preprocessing stage for
// rendering pipelines (GPU rasterizers, font renderers) whose curve
// primitive is the quadratic Bézier.
//
// # Event streams
//
// Paths are represented as lazy sequences of [PathEvent], which mirrors
// [curve.PathElement] but adds an elliptical arc variant. [ToQuadratics]
// consumes such a sequence and produces one in which every cubic and arc
// event has been replaced, in place, by a run of quadratic events
// approximating it; all other events pass through verbatim and in their
// original order. [Events] and [Elements] convert between event streams and
// [curve.PathElement] streams, and [TransformPath] applies the whole pipeline
// to a [curve.BezPath].
//
// # Approximation
//
// Cubics are approximated by adaptive subdivision: a sub-segment is split in
// half until the control-polygon distance between it and its best single
// quadratic fit drops below the caller's tolerance. The total number of
// subdivision steps spent on one cubic is capped (see [CubicQuads]), so
// pathological inputs such as near-cusp curves terminate in bounded time. A
// capped approximation is still continuous and spans the cubic's endpoints,
// but its error is no longer guaranteed to be within tolerance. Arcs are
// decomposed with one quadratic per bounded angular step (see
// [AppendArcQuads]).
//
// All geometry types come from [honnef.co/go/curve]; this package adds no
// point or segment types of its own beyond [PathEvent].
package quadpath
