// Package cutter defines the milling tool shapes the collision engine
// tests against a mesh. A Cutter is a closed tagged variant: dispatch
// over Kind is always an exhaustive switch, and an out-of-range kind is
// a programming error that panics.
package cutter

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
)

// Kind selects the tool shape.
type Kind int

const (
	// BallNose is a hemispherical tip; the reference point is the tip.
	BallNose Kind = iota
	// Cylinder is a flat end mill; the reference point is the bottom center.
	Cylinder
	// Cone tapers linearly from a point tip to the base radius; the
	// reference point is the tip.
	Cone
	// TaperedBallNose is a ball tip with a tapered flank. Only the
	// spherical tip participates in contact testing; the flank is never
	// checked.
	TaperedBallNose
)

// String returns the tool kind name.
func (k Kind) String() string {
	switch k {
	case BallNose:
		return "ball-nose"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case TaperedBallNose:
		return "tapered-ball-nose"
	default:
		panic(fmt.Sprintf("cutter: unknown kind %d", int(k)))
	}
}

// Cutter is an immutable tool shape, created once per tool and reused
// across all queries.
type Cutter struct {
	Kind   Kind
	Radius float64 // ball/tip radius, cylinder radius, or cone base radius
	Length float64 // cylinder length or cone height; zero otherwise
}

// NewBallNose returns a ball-nose cutter of the given diameter.
func NewBallNose(diameter float64) Cutter {
	return Cutter{Kind: BallNose, Radius: diameter / 2}
}

// NewCylinder returns a flat cylindrical cutter of the given diameter
// and flute length.
func NewCylinder(diameter, length float64) Cutter {
	return Cutter{Kind: Cylinder, Radius: diameter / 2, Length: length}
}

// NewCone returns a conical cutter with the given base diameter and height.
func NewCone(baseDiameter, height float64) Cutter {
	return Cutter{Kind: Cone, Radius: baseDiameter / 2, Length: height}
}

// NewTaperedBallNose returns a tapered ball-nose cutter with the given
// tip diameter.
func NewTaperedBallNose(tipDiameter float64) Cutter {
	return Cutter{Kind: TaperedBallNose, Radius: tipDiameter / 2}
}

// Bounds returns the cutter's axis-aligned bounding box with its
// reference point at pos: the tip for ball-nose, tapered-ball-nose and
// cone, the bottom center for cylinder.
func (c Cutter) Bounds(pos vec3.T) geom.Box {
	r := c.Radius
	switch c.Kind {
	case BallNose, TaperedBallNose:
		return geom.NewBox(
			vec3.T{pos[0] - r, pos[1] - r, pos[2]},
			vec3.T{pos[0] + r, pos[1] + r, pos[2] + 2*r},
		)
	case Cylinder:
		return geom.NewBox(
			vec3.T{pos[0] - r, pos[1] - r, pos[2]},
			vec3.T{pos[0] + r, pos[1] + r, pos[2] + c.Length},
		)
	case Cone:
		return geom.NewBox(
			vec3.T{pos[0] - r, pos[1] - r, pos[2]},
			vec3.T{pos[0] + r, pos[1] + r, pos[2] + c.Length},
		)
	default:
		panic(fmt.Sprintf("cutter: unknown kind %d", int(c.Kind)))
	}
}

// String describes the tool, e.g. "ball-nose d=6".
func (c Cutter) String() string {
	switch c.Kind {
	case Cylinder, Cone:
		return fmt.Sprintf("%s d=%g l=%g", c.Kind, 2*c.Radius, c.Length)
	default:
		return fmt.Sprintf("%s d=%g", c.Kind, 2*c.Radius)
	}
}
