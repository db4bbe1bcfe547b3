// Command tinycam computes a 3-axis roughing path for an STL workpiece:
// it plunges the selected cutter at every grid sample and writes the
// contact heights as CSV or G-code moves.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/viachpaliy/TinyCAMLib/pkg/cutter"
	"github.com/viachpaliy/TinyCAMLib/pkg/mesh"
	"github.com/viachpaliy/TinyCAMLib/pkg/toolpath"
)

func main() {
	var (
		stlPath   = flag.String("stl", "", "workpiece STL file (binary or ASCII)")
		toolType  = flag.String("tool", "ball", "tool type: ball, flat, cone, taperedball")
		diameter  = flag.Float64("d", 6.0, "tool diameter")
		length    = flag.Float64("l", 20.0, "flute length (flat) or cone height")
		stepOver  = flag.Float64("step", 1.0, "grid spacing between samples")
		startZ    = flag.Float64("top", 100.0, "clearance height, top of the plunge interval")
		endZ      = flag.Float64("floor", -100.0, "plunge floor, bottom of the interval")
		precision = flag.Float64("precision", 0.01, "depth tolerance")
		pattern   = flag.String("pattern", "cross", "path pattern: cross, zigzag, spiral, circular")
		gcode     = flag.Bool("gcode", false, "emit G1 moves instead of CSV")
		outPath   = flag.String("o", "", "output file (default stdout)")
		workers   = flag.Int("workers", 0, "concurrent depth solvers (0 = all CPUs)")
	)
	flag.Parse()

	if *stlPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	tool, err := newCutter(*toolType, *diameter, *length)
	if err != nil {
		log.Fatalf("tinycam: %v", err)
	}

	m, err := mesh.ReadFile(*stlPath)
	if err != nil {
		log.Fatalf("tinycam: %v", err)
	}
	log.Printf("loaded %s: %d triangles", *stlPath, m.Len())

	pat, err := parsePattern(*pattern)
	if err != nil {
		log.Fatalf("tinycam: %v", err)
	}

	path, err := toolpath.Generate(pat, toolpath.Params{
		Cutter:    tool,
		Mesh:      m,
		StartZ:    *startZ,
		EndZ:      *endZ,
		Precision: *precision,
		StepOver:  *stepOver,
		Workers:   *workers,
	})
	if err != nil {
		log.Fatalf("tinycam: %v", err)
	}
	log.Printf("solved %d samples with %s", len(path.Points), tool)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("tinycam: %v", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, p := range path.Points {
		if *gcode {
			fmt.Fprintf(w, "G1 X%.4f Y%.4f Z%.4f\n", p[0], p[1], p[2])
		} else {
			fmt.Fprintf(w, "%.4f,%.4f,%.4f\n", p[0], p[1], p[2])
		}
	}
}

func newCutter(toolType string, diameter, length float64) (cutter.Cutter, error) {
	switch toolType {
	case "ball":
		return cutter.NewBallNose(diameter), nil
	case "flat":
		return cutter.NewCylinder(diameter, length), nil
	case "cone":
		return cutter.NewCone(diameter, length), nil
	case "taperedball":
		return cutter.NewTaperedBallNose(diameter), nil
	default:
		return cutter.Cutter{}, fmt.Errorf("unrecognised tool type: %s", toolType)
	}
}

func parsePattern(name string) (toolpath.Pattern, error) {
	switch name {
	case "cross":
		return toolpath.Cross, nil
	case "zigzag":
		return toolpath.ZigZag, nil
	case "spiral":
		return toolpath.Spiral, nil
	case "circular":
		return toolpath.Circular, nil
	default:
		return 0, fmt.Errorf("unrecognised pattern: %s", name)
	}
}
