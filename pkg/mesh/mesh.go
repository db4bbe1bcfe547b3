// Package mesh holds the triangle soup the collision engine queries,
// plus STL reading and writing. A Mesh is read-only for the engine:
// concurrent queries may safely share one instance as long as nothing
// mutates it while queries run.
package mesh

import (
	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
)

// Mesh owns an ordered collection of triangles and the derived aggregate
// bounding box. Duplicate and degenerate triangles are permitted.
type Mesh struct {
	triangles []geom.Triangle
	bounds    geom.Box
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{bounds: geom.EmptyBox()}
}

// NewFromTriangles builds a mesh owning the given triangles.
func NewFromTriangles(tris []geom.Triangle) *Mesh {
	m := New()
	for _, t := range tris {
		m.Add(t)
	}
	return m
}

// Add appends a triangle and grows the aggregate box.
func (m *Mesh) Add(t geom.Triangle) {
	m.triangles = append(m.triangles, t)
	m.bounds.ExpandBox(t.Bounds())
}

// Len returns the triangle count.
func (m *Mesh) Len() int {
	return len(m.triangles)
}

// Triangles returns the triangle slice. Callers must treat it as
// read-only.
func (m *Mesh) Triangles() []geom.Triangle {
	return m.triangles
}

// Bounds returns the aggregate bounding box, the Empty sentinel for a
// mesh with zero triangles.
func (m *Mesh) Bounds() geom.Box {
	return m.bounds
}
