// Package collide is the collision engine: the per-shape contact
// predicate and the bisection depth solver built on it. Both are pure
// functions of their inputs with no shared state, so any number of
// queries may run concurrently against one mesh.
package collide

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/cutter"
	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
)

// Touches reports whether the cutter, with its reference point at pos,
// touches any triangle of the mesh. Every shape test is preceded by a
// conservative box prune against the mesh's aggregate box and against
// each triangle's own box.
//
// The cylinder and cone tests check mesh vertices against the tool
// envelope only, not full edge/face intersection: a triangle whose edge
// crosses the tool volume without any vertex inside it is missed.
func Touches(c cutter.Cutter, pos vec3.T, m *mesh.Mesh) bool {
	tool := c.Bounds(pos)
	if !tool.Intersects(m.Bounds()) {
		return false
	}

	switch c.Kind {
	case cutter.BallNose, cutter.TaperedBallNose:
		// Only the spherical tip of a tapered ball-nose is tested.
		return sphereTouches(pos, c.Radius, tool, m)
	case cutter.Cylinder:
		return cylinderTouches(pos, c.Radius, c.Length, tool, m)
	case cutter.Cone:
		return coneTouches(pos, c.Radius, c.Length, tool, m)
	default:
		panic(fmt.Sprintf("collide: unknown cutter kind %d", int(c.Kind)))
	}
}

// sphereTouches tests a sphere of radius r whose lowest point is at tip:
// the center sits at tip + (0, 0, r). Contact holds when the exact
// point-to-triangle distance is within r.
func sphereTouches(tip vec3.T, r float64, tool geom.Box, m *mesh.Mesh) bool {
	center := vec3.T{tip[0], tip[1], tip[2] + r}
	for _, t := range m.Triangles() {
		if !tool.Intersects(t.Bounds()) {
			continue
		}
		if t.DistanceToPoint(center) <= r {
			return true
		}
	}
	return false
}

// cylinderTouches tests a flat-bottomed cylinder of radius r and length
// l standing on pos. A triangle touches when any of its vertices lies in
// the bottom disc, or projects onto the axis within [0, l] at a radial
// distance within r.
func cylinderTouches(pos vec3.T, r, l float64, tool geom.Box, m *mesh.Mesh) bool {
	bottom := geom.Circle{Center: pos, Radius: r, Normal: vec3.T{0, 0, 1}}
	for _, t := range m.Triangles() {
		if !tool.Intersects(t.Bounds()) {
			continue
		}
		for _, v := range [3]vec3.T{t.A, t.B, t.C} {
			if bottom.Contains(v) {
				return true
			}
			h := v[2] - pos[2]
			if h < 0 || h > l {
				continue
			}
			dx := v[0] - pos[0]
			dy := v[1] - pos[1]
			if dx*dx+dy*dy <= r*r {
				return true
			}
		}
	}
	return false
}

// coneTouches tests a cone with its tip at pos, opening upward to
// baseRadius at height h. A vertex at axis parameter t within [0, h]
// touches when its radial distance is within the linearly tapered
// radius baseRadius*t/h.
func coneTouches(pos vec3.T, baseRadius, height float64, tool geom.Box, m *mesh.Mesh) bool {
	for _, t := range m.Triangles() {
		if !tool.Intersects(t.Bounds()) {
			continue
		}
		for _, v := range [3]vec3.T{t.A, t.B, t.C} {
			h := v[2] - pos[2]
			if h < 0 || h > height {
				continue
			}
			allowed := baseRadius * h / height
			dx := v[0] - pos[0]
			dy := v[1] - pos[1]
			if dx*dx+dy*dy <= allowed*allowed {
				return true
			}
		}
	}
	return false
}
