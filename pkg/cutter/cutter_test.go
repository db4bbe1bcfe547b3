package cutter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/viachpaliy/TinyCAMLib/pkg/geom"
)

func TestConstructorsHalveDiameters(t *testing.T) {
	tests := []struct {
		name       string
		c          Cutter
		wantKind   Kind
		wantRadius float64
		wantLength float64
	}{
		{"ball nose", NewBallNose(6), BallNose, 3, 0},
		{"cylinder", NewCylinder(10, 25), Cylinder, 5, 25},
		{"cone", NewCone(12, 8), Cone, 6, 8},
		{"tapered ball nose", NewTaperedBallNose(1), TaperedBallNose, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.c.Kind)
			assert.Equal(t, tt.wantRadius, tt.c.Radius)
			assert.Equal(t, tt.wantLength, tt.c.Length)
		})
	}
}

func TestBounds(t *testing.T) {
	pos := vec3.T{10, 20, 30}

	tests := []struct {
		name string
		c    Cutter
		want geom.Box
	}{
		{
			"ball nose spans the full sphere above the tip",
			NewBallNose(4),
			geom.NewBox(vec3.T{8, 18, 30}, vec3.T{12, 22, 34}),
		},
		{
			"cylinder spans the disc plus the flute length",
			NewCylinder(4, 10),
			geom.NewBox(vec3.T{8, 18, 30}, vec3.T{12, 22, 40}),
		},
		{
			"cone spans tip to base disc",
			NewCone(6, 9),
			geom.NewBox(vec3.T{7, 17, 30}, vec3.T{13, 23, 39}),
		},
		{
			"tapered ball nose uses only the tip sphere",
			NewTaperedBallNose(2),
			geom.NewBox(vec3.T{9, 19, 30}, vec3.T{11, 21, 32}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Bounds(pos))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "ball-nose d=6", NewBallNose(6).String())
	assert.Equal(t, "cylinder d=10 l=25", NewCylinder(10, 25).String())
	assert.Equal(t, "cone d=12 l=8", NewCone(12, 8).String())
	assert.Equal(t, "tapered-ball-nose d=1", NewTaperedBallNose(1).String())
}

func TestUnknownKindPanics(t *testing.T) {
	bad := Cutter{Kind: Kind(99), Radius: 1}
	assert.Panics(t, func() { bad.Bounds(vec3.T{}) })
	assert.Panics(t, func() { _ = Kind(99).String() })
}
