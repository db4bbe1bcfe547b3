package geom

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Triangle is three ordered vertices. Winding determines the normal
// direction; callers must supply consistent winding for normals to be
// meaningful.
type Triangle struct {
	A, B, C vec3.T
}

// Area returns the triangle area, half the magnitude of the edge cross
// product. Zero for degenerate triangles.
func (t Triangle) Area() float64 {
	ab := vec3.Sub(&t.B, &t.A)
	ac := vec3.Sub(&t.C, &t.A)
	cross := vec3.Cross(&ab, &ac)
	return cross.Length() / 2
}

// Normal returns the unit normal derived from the vertex winding.
// Degenerate triangles yield the zero vector.
func (t Triangle) Normal() vec3.T {
	ab := vec3.Sub(&t.B, &t.A)
	ac := vec3.Sub(&t.C, &t.A)
	n := vec3.Cross(&ab, &ac)
	if n.LengthSqr() == 0 {
		return vec3.T{}
	}
	n.Normalize()
	return n
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() Box {
	b := BoxFromPoint(t.A)
	b.ExpandPoint(t.B)
	b.ExpandPoint(t.C)
	return b
}

// Contains reports whether p, assumed to lie in the triangle's plane,
// falls inside the triangle (barycentric test, edges inclusive). A
// degenerate triangle with zero barycentric denominator contains nothing.
func (t Triangle) Contains(p vec3.T) bool {
	v0 := vec3.Sub(&t.C, &t.A)
	v1 := vec3.Sub(&t.B, &t.A)
	v2 := vec3.Sub(&p, &t.A)

	dot00 := vec3.Dot(&v0, &v0)
	dot01 := vec3.Dot(&v0, &v1)
	dot02 := vec3.Dot(&v0, &v2)
	dot11 := vec3.Dot(&v1, &v1)
	dot12 := vec3.Dot(&v1, &v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	u := (dot11*dot02 - dot01*dot12) / denom
	v := (dot00*dot12 - dot01*dot02) / denom

	return u >= 0 && v >= 0 && u+v <= 1
}

// DistanceToPoint returns the shortest distance from p to the triangle.
// The point is projected onto the triangle's plane; if the projection
// lands inside, the distance is the perpendicular offset, otherwise the
// minimum of the three clamped edge distances.
func (t Triangle) DistanceToPoint(p vec3.T) float64 {
	n := t.Normal()
	if n.LengthSqr() > 0 {
		ap := vec3.Sub(&p, &t.A)
		offset := vec3.Dot(&ap, &n)
		shift := n.Scaled(offset)
		proj := vec3.Sub(&p, &shift)
		if t.Contains(proj) {
			return math.Abs(offset)
		}
	}
	dAB := pointSegmentDistanceSq(p, t.A, t.B)
	dBC := pointSegmentDistanceSq(p, t.B, t.C)
	dCA := pointSegmentDistanceSq(p, t.C, t.A)
	return math.Sqrt(math.Min(dAB, math.Min(dBC, dCA)))
}

// pointSegmentDistanceSq returns the squared distance from p to segment
// ab, clamping the projection parameter to [0, 1]. A zero-length segment
// falls back to the point-to-endpoint distance.
func pointSegmentDistanceSq(p, a, b vec3.T) float64 {
	ab := vec3.Sub(&b, &a)
	ap := vec3.Sub(&p, &a)

	lenSq := ab.LengthSqr()
	if lenSq == 0 {
		return ap.LengthSqr()
	}

	s := vec3.Dot(&ap, &ab) / lenSq
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	closest := ab.Scaled(s)
	closest.Add(&a)
	d := vec3.Sub(&p, &closest)
	return d.LengthSqr()
}
