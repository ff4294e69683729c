package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/buoyancy/internal/buoyancy"
	"github.com/Faultbox/buoyancy/internal/config"
	"github.com/Faultbox/buoyancy/internal/physics"
	"github.com/Faultbox/buoyancy/internal/water"
	"github.com/Faultbox/buoyancy/pkg/math"
)

// FromConfig builds a scene with one wave field and every configured body.
// cfg is validated first, so a bad file fails here rather than mid-run.
func FromConfig(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := water.NewWaveField(cfg.Water.Params())
	if err != nil {
		return nil, fmt.Errorf("creating wave field: %w", err)
	}

	world := &physics.World{Gravity: vec3(cfg.Simulation.Gravity)}
	s, err := New(field, world, cfg.Simulation.FixedStep, log)
	if err != nil {
		return nil, err
	}

	for i, bc := range cfg.Bodies {
		name := bc.Name
		if name == "" {
			name = fmt.Sprintf("body%d", i)
		}

		float, err := buoyancy.New(
			buoyancy.Bounds{Center: vec3(bc.BoundsCenter), Size: vec3(bc.BoundsSize)},
			buoyancy.Grid{X: bc.Grid[0], Y: bc.Grid[1], Z: bc.Grid[2]},
			bc.TotalForce,
		)
		if err != nil {
			return nil, fmt.Errorf("body %s: %w", name, err)
		}

		rigid := physics.NewRigidBody(bodyTransform(bc), bc.Mass, bc.Static)
		s.Add(name, rigid, float)
	}
	return s, nil
}

// bodyTransform converts a body's position, Euler degrees and scale.
func bodyTransform(bc config.BodyConfig) math.Transform {
	xf := math.NewTransform(vec3(bc.Position))
	xf.Rotation = math.QuatFromEuler(
		radians(bc.Rotation[0]),
		radians(bc.Rotation[1]),
		radians(bc.Rotation[2]),
	)
	if bc.Scale != ([3]float32{}) {
		xf.Scale = vec3(bc.Scale)
	}
	return xf
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
