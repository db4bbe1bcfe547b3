package collide

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/cutter"
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
)

// FindContactZ locates the highest Z in [endZ, startZ] at which the
// cutter touches the mesh when plunging straight down at (x, y). The
// second return value is false when there is no contact anywhere in the
// interval; that is a normal outcome, not a failure.
//
// The search assumes contact as a function of decreasing Z is a single
// downward step: false above the surface, true at and below first
// contact. Concave or multi-sheet meshes (an overhang above a lower
// face) can violate this and make the solver report a deeper contact
// than the true highest one.
//
// Degenerate queries answer "no contact": an empty mesh, an interval
// with startZ <= endZ, or a non-positive precision.
func FindContactZ(c cutter.Cutter, m *mesh.Mesh, x, y, startZ, endZ, precision float64) (float64, bool) {
	if m.Len() == 0 || startZ <= endZ || precision <= 0 {
		return 0, false
	}

	if !Touches(c, vec3.T{x, y, endZ}, m) {
		return 0, false
	}
	if Touches(c, vec3.T{x, y, startZ}, m) {
		return startZ, true
	}

	// Invariant: contact holds at low, never at high.
	high, low := startZ, endZ
	for high-low > precision {
		mid := (high + low) / 2
		if Touches(c, vec3.T{x, y, mid}, m) {
			low = mid
		} else {
			high = mid
		}
	}
	return low, true
}
