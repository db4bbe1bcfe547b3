package geom

import (
	"errors"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// ErrNoPoints is returned when a box is aggregated from an empty sequence.
var ErrNoPoints = errors.New("geom: cannot build a box from an empty sequence")

// Box is an axis-aligned bounding box. A normal box satisfies Min <= Max
// on every axis. The Empty sentinel (Min=+Inf, Max=-Inf) is the identity
// for Union and is reported by aggregates with nothing in them.
type Box struct {
	Min, Max vec3.T
}

// EmptyBox returns the empty sentinel box.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: vec3.T{inf, inf, inf},
		Max: vec3.T{-inf, -inf, -inf},
	}
}

// InfiniteBox returns the box containing every point.
func InfiniteBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: vec3.T{-inf, -inf, -inf},
		Max: vec3.T{inf, inf, inf},
	}
}

// NewBox builds a box from explicit corners.
func NewBox(min, max vec3.T) Box {
	return Box{Min: min, Max: max}
}

// BoxFromPoint returns the degenerate box containing a single point.
func BoxFromPoint(p vec3.T) Box {
	return Box{Min: p, Max: p}
}

// BoxFromPoints aggregates a box over a point sequence.
func BoxFromPoints(points []vec3.T) (Box, error) {
	if len(points) == 0 {
		return EmptyBox(), ErrNoPoints
	}
	b := BoxFromPoint(points[0])
	for _, p := range points[1:] {
		b.ExpandPoint(p)
	}
	return b, nil
}

// BoxFromTriangles aggregates a box over a triangle sequence.
func BoxFromTriangles(tris []Triangle) (Box, error) {
	if len(tris) == 0 {
		return EmptyBox(), ErrNoPoints
	}
	b := tris[0].Bounds()
	for _, t := range tris[1:] {
		b.ExpandBox(t.Bounds())
	}
	return b, nil
}

// IsEmpty reports whether the box contains no points (inverted on some axis).
func (b Box) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Center returns the midpoint of the box.
func (b Box) Center() vec3.T {
	return vec3.T{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Extents returns the box dimensions per axis.
func (b Box) Extents() vec3.T {
	return vec3.Sub(&b.Max, &b.Min)
}

// Volume returns the enclosed volume.
func (b Box) Volume() float64 {
	e := b.Extents()
	return e[0] * e[1] * e[2]
}

// SurfaceArea returns the total area of the six faces.
func (b Box) SurfaceArea() float64 {
	e := b.Extents()
	return 2 * (e[0]*e[1] + e[1]*e[2] + e[0]*e[2])
}

// ContainsPoint reports whether p lies inside the box, bounds inclusive.
func (b Box) ContainsPoint(p vec3.T) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ContainsBox reports whether other lies entirely inside b.
func (b Box) ContainsBox(other Box) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Intersects reports whether the two boxes overlap on every axis, bounds
// inclusive: boxes sharing only a face, edge or corner still intersect.
// This is the engine's sole pruning test and must stay conservative.
func (b Box) Intersects(other Box) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] < other.Min[i] || b.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}

// Intersection returns the overlap box, or the Empty sentinel when the
// boxes are disjoint.
func (b Box) Intersection(other Box) Box {
	if !b.Intersects(other) {
		return EmptyBox()
	}
	out := Box{}
	for i := 0; i < 3; i++ {
		out.Min[i] = math.Max(b.Min[i], other.Min[i])
		out.Max[i] = math.Min(b.Max[i], other.Max[i])
	}
	return out
}

// Union returns the smallest box containing both boxes. Empty is the
// identity element.
func (b Box) Union(other Box) Box {
	out := Box{}
	for i := 0; i < 3; i++ {
		out.Min[i] = math.Min(b.Min[i], other.Min[i])
		out.Max[i] = math.Max(b.Max[i], other.Max[i])
	}
	return out
}

// ClosestPoint returns the point of the box nearest to p (p itself when
// p is inside).
func (b Box) ClosestPoint(p vec3.T) vec3.T {
	out := p
	for i := 0; i < 3; i++ {
		if out[i] < b.Min[i] {
			out[i] = b.Min[i]
		}
		if out[i] > b.Max[i] {
			out[i] = b.Max[i]
		}
	}
	return out
}

// DistanceSq returns the squared distance from p to the box, zero inside.
func (b Box) DistanceSq(p vec3.T) float64 {
	c := b.ClosestPoint(p)
	d := vec3.Sub(&p, &c)
	return d.LengthSqr()
}

// Distance returns the distance from p to the box, zero inside.
func (b Box) Distance(p vec3.T) float64 {
	return math.Sqrt(b.DistanceSq(p))
}

// ExpandPoint grows the box to include p.
func (b *Box) ExpandPoint(p vec3.T) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// ExpandBox grows the box to include another box.
func (b *Box) ExpandBox(other Box) {
	b.ExpandPoint(other.Min)
	b.ExpandPoint(other.Max)
}

// ExpandMargin grows the box by a uniform margin on every side.
func (b *Box) ExpandMargin(margin float64) {
	for i := 0; i < 3; i++ {
		b.Min[i] -= margin
		b.Max[i] += margin
	}
}
