// Command mkpart generates sample workpiece STL files through the sdfx
// geometry kernel, for exercising the collision engine without real
// scan data.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/viachpaliy/TinyCAMLib/pkg/kernel"
	sdfxkernel "github.com/viachpaliy/TinyCAMLib/pkg/kernel/sdfx"
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
)

func main() {
	var (
		shape   = flag.String("shape", "block", "workpiece shape: block, boss, pocket, dome")
		size    = flag.Float64("size", 50.0, "block edge length")
		outPath = flag.String("o", "part.stl", "output STL file")
		cells   = flag.Int("cells", 0, "marching cubes resolution (0 = default)")
	)
	flag.Parse()

	k := sdfxkernel.NewWithResolution(*cells)
	solid, err := buildShape(k, *shape, *size)
	if err != nil {
		log.Fatalf("mkpart: %v", err)
	}

	m, err := k.ToMesh(solid)
	if err != nil {
		log.Fatalf("mkpart: tessellate: %v", err)
	}
	if err := mesh.WriteBinaryFile(*outPath, m); err != nil {
		log.Fatalf("mkpart: %v", err)
	}
	log.Printf("wrote %s: %d triangles", *outPath, m.Len())
}

// buildShape assembles a demo workpiece. All shapes sit on z=0 so the
// top surface faces the plunging cutter.
func buildShape(k kernel.Kernel, shape string, size float64) (kernel.Solid, error) {
	base := k.Box(size, size, size/4)
	switch shape {
	case "block":
		return base, nil
	case "boss":
		// Cylindrical boss standing on the block center.
		boss := k.Cylinder(size/4, size/8)
		boss = k.Translate(boss, size/2, size/2, size/4)
		return k.Union(base, boss), nil
	case "pocket":
		// Cylindrical pocket sunk into the block top.
		hole := k.Cylinder(size/4, size/6)
		hole = k.Translate(hole, size/2, size/2, size/8)
		return k.Difference(base, hole), nil
	case "dome":
		// Spherical dome rising from the block top.
		dome := k.Sphere(size / 4)
		dome = k.Translate(dome, size/2, size/2, size/4)
		return k.Union(base, dome), nil
	default:
		return nil, fmt.Errorf("unrecognised shape: %s", shape)
	}
}
