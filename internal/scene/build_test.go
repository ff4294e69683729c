package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/buoyancy/internal/buoyancy"
	"github.com/Faultbox/buoyancy/internal/config"
	"github.com/Faultbox/buoyancy/internal/water"
	"github.com/Faultbox/buoyancy/pkg/math"
)

func TestFromConfigDefault(t *testing.T) {
	cfg := config.Default()
	s, err := FromConfig(cfg, nil)
	require.NoError(t, err)

	require.Len(t, s.Objects(), 1)
	obj := s.Object("crate")
	require.NotNil(t, obj)
	assert.Equal(t, buoyancy.Grid{X: 10, Y: 10, Z: 10}, obj.Float.Grid())
	assert.InDelta(t, 500, obj.Float.ForcePerPoint(), 1e-3)
	assert.Equal(t, math.Vec3{Y: 2}, obj.Rigid.Position)
	assert.Equal(t, float32(20000), obj.Rigid.Mass)
}

func TestFromConfigTransform(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies = []config.BodyConfig{{
		Name:       "tilted",
		Position:   [3]float32{1, 2, 3},
		Rotation:   [3]float32{0, 90, 0},
		Mass:       1,
		BoundsSize: [3]float32{1, 1, 1},
		Grid:       [3]int{1, 1, 1},
		TotalForce: 1,
	}}

	s, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	rigid := s.Object("tilted").Rigid

	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, rigid.Scale, "omitted scale means unit scale")
	got := rigid.ToWorld(math.Vec3{X: 1})
	assert.InDelta(t, 0, got.Distance(math.Vec3{X: 1, Y: 2, Z: 2}), 1e-5, "yaw 90 maps +X to -Z")
}

func TestFromConfigErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies[0].Grid = [3]int{0, 1, 1}
	_, err := FromConfig(cfg, nil)
	assert.ErrorIs(t, err, buoyancy.ErrInvalidGridDimension)

	cfg = config.Default()
	cfg.Water.Length = 0
	_, err = FromConfig(cfg, nil)
	assert.ErrorIs(t, err, water.ErrInvalidWavelength)

	cfg = config.Default()
	cfg.Bodies[0].Scale = [3]float32{1, 0, 1}
	_, err = FromConfig(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Bodies[0].TotalForce = math32.NaN()
	_, err = FromConfig(cfg, nil)
	assert.ErrorIs(t, err, buoyancy.ErrInvalidForce)
}

func TestFromConfigUnnamedBodies(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies = append(cfg.Bodies, cfg.Bodies[0])
	cfg.Bodies[0].Name = ""
	cfg.Bodies[1].Name = ""

	s, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, s.Object("body0"))
	assert.NotNil(t, s.Object("body1"))
}
