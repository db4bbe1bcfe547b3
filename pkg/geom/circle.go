package geom

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// planeEpsilon is the tolerance for treating a point as lying in a
// circle's plane.
const planeEpsilon = 1e-9

// Circle is a flat disc in 3D space, described by its center, radius
// and unit plane normal. It models the flat bottom of a cylindrical
// cutter.
type Circle struct {
	Center vec3.T
	Radius float64
	Normal vec3.T
}

// Contains reports whether p lies in the disc: on the circle's plane
// (within planeEpsilon) and within Radius of the center.
func (c Circle) Contains(p vec3.T) bool {
	d := vec3.Sub(&p, &c.Center)
	offset := vec3.Dot(&d, &c.Normal)
	if math.Abs(offset) > planeEpsilon {
		return false
	}
	shift := c.Normal.Scaled(offset)
	inPlane := vec3.Sub(&d, &shift)
	return inPlane.LengthSqr() <= c.Radius*c.Radius
}
