package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/cutter"
	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
)

// flatSquare builds a horizontal square of the given side at height z,
// centered on the origin, out of two triangles.
func flatSquare(side, z float64) *mesh.Mesh {
	h := side / 2
	return mesh.NewFromTriangles([]geom.Triangle{
		{A: vec3.T{-h, -h, z}, B: vec3.T{h, -h, z}, C: vec3.T{h, h, z}},
		{A: vec3.T{-h, -h, z}, B: vec3.T{h, h, z}, C: vec3.T{-h, h, z}},
	})
}

func TestBallNoseTouchesPlane(t *testing.T) {
	m := flatSquare(10, 0)
	ball := cutter.NewBallNose(2)

	// Tip at the plane: the sphere rests exactly on it.
	assert.True(t, Touches(ball, vec3.T{0, 0, 0}, m))
	// Tip just above: no contact.
	assert.False(t, Touches(ball, vec3.T{0, 0, 0.01}, m))
	// Tip below: the sphere is embedded.
	assert.True(t, Touches(ball, vec3.T{0, 0, -1}, m))
}

func TestBallNoseNearEdge(t *testing.T) {
	m := flatSquare(10, 0)
	ball := cutter.NewBallNose(2)

	// Sphere center hangs off the square edge at x=5; the closest
	// feature is the boundary edge. Center at (5.6, 0, 0.2) with r=1:
	// center height is 1.2, horizontal reach 0.6, distance to the edge
	// is sqrt(0.36 + 1.44) > 1, so no touch.
	assert.False(t, Touches(ball, vec3.T{5.6, 0, 0.2}, m))
	// Same x, tip at the plane height: distance sqrt(0.36+1) > 1 still.
	assert.False(t, Touches(ball, vec3.T{5.6, 0, 0}, m))
	// Just off the edge, distance sqrt(0.01+1) > 1 barely misses, but
	// at 5.05 the overhang is 0.05 and the sphere reaches the edge.
	assert.True(t, Touches(ball, vec3.T{5.05, 0, -0.5}, m))
}

func TestTaperedBallNoseTestsOnlyTip(t *testing.T) {
	m := flatSquare(10, 0)
	tapered := cutter.NewTaperedBallNose(2)
	ball := cutter.NewBallNose(2)

	// The tapered tool behaves exactly like a ball nose of its tip
	// radius; the flank above the tip is never tested.
	for _, z := range []float64{-1, 0, 0.01, 5} {
		pos := vec3.T{0, 0, z}
		assert.Equal(t, Touches(ball, pos, m), Touches(tapered, pos, m), "z=%g", z)
	}
}

func TestCylinderSideWall(t *testing.T) {
	// A single vertical triangle whose vertices sit at x=3.
	wall := mesh.NewFromTriangles([]geom.Triangle{
		{A: vec3.T{3, -1, 0}, B: vec3.T{3, 1, 0}, C: vec3.T{3, 0, 4}},
	})
	tool := cutter.NewCylinder(8, 10) // radius 4

	// Bottom vertices at z=0 project onto the axis at t=0 with radial
	// distance 3 <= 4: side wall contact.
	assert.True(t, Touches(tool, vec3.T{0, 0, 0}, wall))
	// Tool lifted above all vertices: apex z=4 < tool bottom z=5.
	assert.False(t, Touches(tool, vec3.T{0, 0, 5}, wall))
	// Tool far away radially.
	assert.False(t, Touches(tool, vec3.T{10, 0, 0}, wall))
}

func TestCylinderVertexOnlyApproximation(t *testing.T) {
	// A wide triangle whose edge crosses the tool axis but whose
	// vertices are all outside the radius: the vertex-based test misses
	// it. This documents the known approximation.
	span := mesh.NewFromTriangles([]geom.Triangle{
		{A: vec3.T{-10, 0, 1}, B: vec3.T{10, 0, 1}, C: vec3.T{0, 10, 1}},
	})
	tool := cutter.NewCylinder(2, 5) // radius 1

	assert.False(t, Touches(tool, vec3.T{0, -0.001, 0}, span))
	// Moving a vertex inside the radius restores detection.
	near := mesh.NewFromTriangles([]geom.Triangle{
		{A: vec3.T{0.5, 0, 1}, B: vec3.T{10, 0, 1}, C: vec3.T{0, 10, 1}},
	})
	assert.True(t, Touches(tool, vec3.T{0, 0, 0}, near))
}

func TestConeTaper(t *testing.T) {
	// Vertex at height 2 and radial distance 1.
	peak := mesh.NewFromTriangles([]geom.Triangle{
		{A: vec3.T{1, 0, 2}, B: vec3.T{2, 0, 2}, C: vec3.T{1.5, 1, 2}},
	})
	tool := cutter.NewCone(8, 8) // base radius 4, height 8

	// At the cone tip height z=0, the vertex sits at t=2 where the
	// allowed radius is 4*2/8 = 1: exactly on the flank.
	assert.True(t, Touches(tool, vec3.T{0, 0, 0}, peak))
	// Raising the tool halves the vertex's axis parameter to t=1,
	// allowed radius 0.5 < 1: no contact.
	assert.False(t, Touches(tool, vec3.T{0, 0, 1}, peak))
	// A vertex below the tip is never tested.
	assert.False(t, Touches(tool, vec3.T{0, 0, 3}, peak))
}

func TestMeshLevelPrune(t *testing.T) {
	m := flatSquare(10, 0)
	ball := cutter.NewBallNose(2)

	// Far outside the mesh box on every axis.
	assert.False(t, Touches(ball, vec3.T{100, 100, 100}, m))
	assert.False(t, Touches(ball, vec3.T{0, 0, 50}, m))
}

func TestTouchesEmptyMesh(t *testing.T) {
	m := mesh.New()
	assert.False(t, Touches(cutter.NewBallNose(2), vec3.T{0, 0, 0}, m))
}

func TestTouchesUnknownKindPanics(t *testing.T) {
	m := flatSquare(10, 0)
	bad := cutter.Cutter{Kind: cutter.Kind(42), Radius: 1}
	assert.Panics(t, func() { Touches(bad, vec3.T{0, 0, 0}, m) })
}
