package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
)

func squareMesh() *Mesh {
	return NewFromTriangles([]geom.Triangle{
		{A: vec3.T{0, 0, 0}, B: vec3.T{10, 0, 0}, C: vec3.T{10, 10, 0}},
		{A: vec3.T{0, 0, 0}, B: vec3.T{10, 10, 0}, C: vec3.T{0, 10, 0}},
	})
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, squareMesh()))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, vec3.T{10, 0, 0}, got.Triangles()[0].B)
	assert.Equal(t, geom.NewBox(vec3.T{0, 0, 0}, vec3.T{10, 10, 0}), got.Bounds())
}

func TestReadASCII(t *testing.T) {
	const src = `solid plate
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 0 0
      vertex 10 10 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 10 0
      vertex 0 10 0
    endloop
  endfacet
endsolid plate
`
	m, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	assert.Equal(t, vec3.T{0, 10, 0}, m.Triangles()[1].C)
}

func TestWriteASCIIReadBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, squareMesh(), "plate"))
	assert.True(t, strings.HasPrefix(buf.String(), "solid plate"))

	m, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestReadASCIIMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad vertex arity", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 1 2\nendloop\nendfacet\nendsolid x\n"},
		{"bad number", "solid x\nfacet normal 0 0 1\nouter loop\nvertex a b c\nendloop\nendfacet\nendsolid x\n"},
		{"facet with two vertices", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestReadBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, squareMesh()))
	data := buf.Bytes()[:buf.Len()-10]

	_, err := Read(bytes.NewReader(data))
	assert.Error(t, err)
}
