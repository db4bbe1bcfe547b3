// Package toolpath turns depth-solver answers into 3-axis tool paths.
// It owns the (x, y) sample grid, the output path and the parallel
// dispatch of the per-sample queries; the collision engine itself stays
// a pure function.
package toolpath

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/collide"
	"github.com/viachpaliy/TinyCAMLib/pkg/cutter"
	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
)

// Pattern selects how sample points are enumerated over the work area.
type Pattern int

const (
	// Cross rasters the area along X row by row, then along Y column by
	// column.
	Cross Pattern = iota
	// ZigZag is recognized but not implemented.
	ZigZag
	// Spiral is recognized but not implemented.
	Spiral
	// Circular is recognized but not implemented.
	Circular
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case Cross:
		return "cross"
	case ZigZag:
		return "zig-zag"
	case Spiral:
		return "spiral"
	case Circular:
		return "circular"
	default:
		panic(fmt.Sprintf("toolpath: unknown pattern %d", int(p)))
	}
}

// Path is an ordered sequence of (x, y, z) tool positions. Points start
// at the plunge floor and are raised to the solver's contact height; a
// point with no contact in range stays at the floor.
type Path struct {
	Points []vec3.T
}

// Params configures a path generation run.
type Params struct {
	Cutter    cutter.Cutter
	Mesh      *mesh.Mesh
	StartZ    float64 // clearance height, top of the plunge interval
	EndZ      float64 // plunge floor, bottom of the interval
	Precision float64 // depth tolerance, must be positive
	StepOver  float64 // grid spacing between neighboring samples
	Area      *geom.Box // XY extent to sample; nil means the mesh bounds
	Workers   int       // concurrent solvers; <= 0 means GOMAXPROCS
}

func (p Params) validate() error {
	if p.Mesh == nil {
		return fmt.Errorf("toolpath: nil mesh")
	}
	if p.StepOver <= 0 {
		return fmt.Errorf("toolpath: step-over must be positive, got %g", p.StepOver)
	}
	if p.Precision <= 0 {
		return fmt.Errorf("toolpath: precision must be positive, got %g", p.Precision)
	}
	if p.StartZ <= p.EndZ {
		return fmt.Errorf("toolpath: startZ %g must be above endZ %g", p.StartZ, p.EndZ)
	}
	return nil
}

// Generate enumerates the pattern's sample grid and solves the contact
// depth at every sample. Selecting an unimplemented pattern is an
// error; an out-of-range selector is a programming error.
func Generate(pattern Pattern, p Params) (*Path, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	switch pattern {
	case Cross:
		return generateCross(p), nil
	case ZigZag, Spiral, Circular:
		return nil, fmt.Errorf("toolpath: %s pattern is not implemented", pattern)
	default:
		panic(fmt.Sprintf("toolpath: unknown pattern %d", int(pattern)))
	}
}

// generateCross samples along X for each Y step, then along Y for each
// X step, covering the area in two crossed raster passes.
func generateCross(p Params) *Path {
	area := p.Mesh.Bounds()
	if p.Area != nil {
		area = *p.Area
	}

	path := &Path{}
	for y := area.Min[1]; y <= area.Max[1]; y += p.StepOver {
		for x := area.Min[0]; x <= area.Max[0]; x += p.StepOver {
			path.Points = append(path.Points, vec3.T{x, y, p.EndZ})
		}
	}
	for x := area.Min[0]; x <= area.Max[0]; x += p.StepOver {
		for y := area.Min[1]; y <= area.Max[1]; y += p.StepOver {
			path.Points = append(path.Points, vec3.T{x, y, p.EndZ})
		}
	}

	path.solve(p)
	return path
}

// solve runs the depth solver over every point of the path. Samples are
// independent, so workers stride over the slice and each writes only
// its own slots; no locking is needed.
func (path *Path) solve(p Params) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(path.Points) {
		workers = len(path.Points)
	}
	if workers == 0 {
		return
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(path.Points); i += workers {
				pt := &path.Points[i]
				z, ok := collide.FindContactZ(p.Cutter, p.Mesh, pt[0], pt[1], p.StartZ, p.EndZ, p.Precision)
				if ok {
					pt[2] = z
				}
			}
		}(w)
	}
	wg.Wait()
}
