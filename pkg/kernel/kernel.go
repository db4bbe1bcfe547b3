// Package kernel defines the abstract geometry kernel used to generate
// workpiece meshes for the collision engine. Implementations provide
// solid modeling and tessellation behind this interface, so the rest of
// the system never depends on a particular CAD backend.
package kernel

import (
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
)

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid
	Sphere(radius float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid

	// Tessellation into the engine's triangle mesh.
	ToMesh(s Solid) (*mesh.Mesh, error)
}
