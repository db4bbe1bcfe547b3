package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
)

// binaryHeaderSize is the fixed STL binary header (80 bytes) plus the
// uint32 triangle count.
const binaryHeaderSize = 84

// binaryTriangleSize is 12 little-endian float32s (normal + 3 vertices)
// plus a uint16 attribute word.
const binaryTriangleSize = 50

// ReadFile loads an STL mesh from disk, auto-detecting binary vs ASCII.
func ReadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	return m, nil
}

// Read parses an STL stream, auto-detecting binary vs ASCII. A binary
// file whose header happens to start with "solid" is still recognized
// by its exact length.
func Read(r io.Reader) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mesh: read stl: %w", err)
	}
	if isBinarySTL(data) {
		return readBinary(data)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data[:min(len(data), 6)])), "solid") {
		return readASCII(data)
	}
	return readBinary(data)
}

// isBinarySTL checks the length invariant of the binary layout: header
// plus exactly count*50 bytes of triangle records.
func isBinarySTL(data []byte) bool {
	if len(data) < binaryHeaderSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	return len(data) == binaryHeaderSize+int(count)*binaryTriangleSize
}

func readBinary(data []byte) (*Mesh, error) {
	if len(data) < binaryHeaderSize {
		return nil, fmt.Errorf("mesh: binary stl truncated: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	if len(data) < binaryHeaderSize+int(count)*binaryTriangleSize {
		return nil, fmt.Errorf("mesh: binary stl claims %d triangles, data too short", count)
	}

	m := New()
	off := binaryHeaderSize
	for i := uint32(0); i < count; i++ {
		// Skip the stored normal; it is recomputed from winding on demand.
		rec := data[off : off+binaryTriangleSize]
		var verts [3]vec3.T
		for v := 0; v < 3; v++ {
			base := 12 + v*12
			for c := 0; c < 3; c++ {
				bits := binary.LittleEndian.Uint32(rec[base+c*4 : base+c*4+4])
				verts[v][c] = float64(math.Float32frombits(bits))
			}
		}
		m.Add(geom.Triangle{A: verts[0], B: verts[1], C: verts[2]})
		off += binaryTriangleSize
	}
	return m, nil
}

func readASCII(data []byte) (*Mesh, error) {
	m := New()
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var verts []vec3.T
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("mesh: ascii stl line %d: malformed vertex", line)
			}
			var v vec3.T
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("mesh: ascii stl line %d: %w", line, err)
				}
				v[i] = val
			}
			verts = append(verts, v)
		case "endfacet":
			if len(verts) != 3 {
				return nil, fmt.Errorf("mesh: ascii stl line %d: facet with %d vertices", line, len(verts))
			}
			m.Add(geom.Triangle{A: verts[0], B: verts[1], C: verts[2]})
			verts = verts[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: ascii stl: %w", err)
	}
	if len(verts) != 0 {
		return nil, fmt.Errorf("mesh: ascii stl: trailing facet with %d vertices", len(verts))
	}
	return m, nil
}

// WriteBinaryFile saves the mesh to disk in binary STL format.
func WriteBinaryFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mesh: create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteBinary(w, m); err != nil {
		return fmt.Errorf("mesh: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("mesh: write %s: %w", path, err)
	}
	return nil
}

// WriteBinary writes the mesh as binary STL.
func WriteBinary(w io.Writer, m *Mesh) error {
	var header [80]byte
	copy(header[:], "TinyCAMLib binary STL")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(m.Len())); err != nil {
		return err
	}
	rec := make([]byte, binaryTriangleSize)
	for _, t := range m.Triangles() {
		n := t.Normal()
		putVec(rec[0:], n)
		putVec(rec[12:], t.A)
		putVec(rec[24:], t.B)
		putVec(rec[36:], t.C)
		rec[48], rec[49] = 0, 0
		if _, err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func putVec(dst []byte, v vec3.T) {
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v[i])))
	}
}

// WriteASCII writes the mesh as ASCII STL under the given solid name.
func WriteASCII(w io.Writer, m *Mesh, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles() {
		n := t.Normal()
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n[0], n[1], n[2])
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range [3]vec3.T{t.A, t.B, t.C} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v[0], v[1], v[2])
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
