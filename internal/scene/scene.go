// Package scene drives the fixed-step simulation of floating bodies.
//
// Each tick the scene advances the shared wave field exactly once, steps the
// buoyancy of every object against it, and then integrates the rigid bodies.
package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/buoyancy/internal/buoyancy"
	"github.com/Faultbox/buoyancy/internal/logger"
	"github.com/Faultbox/buoyancy/internal/physics"
	"github.com/Faultbox/buoyancy/internal/water"
	"github.com/Faultbox/buoyancy/pkg/math"
)

// maxTicksPerUpdate bounds catch-up work after a long frame.
const maxTicksPerUpdate = 10

// Object pairs a rigid body with its buoyancy sampler.
type Object struct {
	Name  string
	Rigid *physics.RigidBody
	Float *buoyancy.Body
	Last  buoyancy.StepResult // result of the most recent tick
}

// Scene owns the wave field, the physics world and the floating objects.
type Scene struct {
	field     *water.WaveField
	world     *physics.World
	objects   []*Object
	fixedStep float32

	accumulator float32
	ticks       uint64
	elapsed     float32

	log *zap.Logger
}

// New creates an empty scene. fixedStep is the tick length in seconds and
// must be positive and finite. A nil log discards output.
func New(field *water.WaveField, world *physics.World, fixedStep float32, log *zap.Logger) (*Scene, error) {
	if field == nil {
		return nil, errors.New("scene needs a wave field")
	}
	if !(fixedStep > 0) || math32.IsInf(fixedStep, 1) {
		return nil, fmt.Errorf("fixed step must be positive and finite, got %v", fixedStep)
	}
	if world == nil {
		world = physics.NewWorld()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		field:     field,
		world:     world,
		fixedStep: fixedStep,
		log:       log,
	}, nil
}

// Add registers a floating object. The rigid body joins the physics world.
func (s *Scene) Add(name string, rigid *physics.RigidBody, float *buoyancy.Body) *Object {
	obj := &Object{Name: name, Rigid: rigid, Float: float}
	s.objects = append(s.objects, obj)
	s.world.AddBody(rigid)

	s.log.Debug("object added",
		zap.String("name", name),
		zap.Int("samples", float.Grid().Count()),
		zap.Float32("force_per_point", float.ForcePerPoint()),
		logger.Vec3("position", rigid.Position),
	)
	return obj
}

// Tick runs one fixed simulation step.
func (s *Scene) Tick() {
	dt := s.fixedStep

	// Single writer: every body below sees the same phase.
	s.field.Advance(dt)

	for _, obj := range s.objects {
		obj.Last = obj.Float.Step(obj.Rigid, obj.Rigid, s.field)
		if obj.Last.Applied {
			s.log.Debug("buoyancy",
				zap.String("name", obj.Name),
				zap.Int("submerged", obj.Last.Submerged),
				zap.Float32("force", obj.Last.Force),
				logger.Vec3("at", obj.Last.Position),
			)
		}
	}

	s.world.Step(dt)
	s.ticks++
	s.elapsed += dt
}

// Update consumes frameDt seconds of wall time in fixed ticks and returns how
// many ran. Leftover time carries into the next call. After a long stall at
// most maxTicksPerUpdate ticks run and the backlog is dropped.
func (s *Scene) Update(frameDt float32) int {
	if frameDt <= 0 {
		return 0
	}
	s.accumulator += frameDt

	n := 0
	for s.accumulator >= s.fixedStep && n < maxTicksPerUpdate {
		s.Tick()
		s.accumulator -= s.fixedStep
		n++
	}
	if n == maxTicksPerUpdate && s.accumulator >= s.fixedStep {
		s.log.Warn("simulation falling behind, dropping time",
			zap.Float32("dropped", s.accumulator))
		s.accumulator = 0
	}
	return n
}

// Run ticks until at least duration seconds of simulated time have passed.
// onTick, if set, is called after each tick. A negative or non-finite
// duration runs nothing.
func (s *Scene) Run(duration float32, onTick func(*Scene)) {
	if !(duration >= 0) || math32.IsInf(duration, 1) {
		s.log.Warn("ignoring run with invalid duration", zap.Float32("duration", duration))
		return
	}
	target := s.ticks + uint64(duration/s.fixedStep+0.5)
	for s.ticks < target {
		s.Tick()
		if onTick != nil {
			onTick(s)
		}
	}
}

// LogState writes one info line per object.
func (s *Scene) LogState() {
	for _, obj := range s.objects {
		s.log.Info("state",
			zap.Uint64("tick", s.ticks),
			zap.Float32("time", s.elapsed),
			zap.String("name", obj.Name),
			logger.Vec3("position", obj.Rigid.Position),
			logger.Vec3("velocity", obj.Rigid.Velocity),
			zap.Int("submerged", obj.Last.Submerged),
			zap.Float32("force", obj.Last.Force),
		)
	}
}

// Field returns the shared wave field.
func (s *Scene) Field() *water.WaveField { return s.field }

// Objects returns the registered objects in insertion order.
func (s *Scene) Objects() []*Object { return s.objects }

// Object returns the object with the given name, or nil.
func (s *Scene) Object(name string) *Object {
	for _, obj := range s.objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Ticks returns the number of ticks run so far.
func (s *Scene) Ticks() uint64 { return s.ticks }

// Elapsed returns simulated seconds.
func (s *Scene) Elapsed() float32 { return s.elapsed }

// FixedStep returns the tick length in seconds.
func (s *Scene) FixedStep() float32 { return s.fixedStep }

// WorldSamples writes the object's sample points in world space into dst and
// returns it. All points share one local-to-world matrix.
func (o *Object) WorldSamples(dst []math.Vec3) []math.Vec3 {
	return o.Rigid.Matrix().TransformPoints(dst, o.Float.SamplePoints())
}

// XExtent returns the world-space X range spanned by all sample points.
func (s *Scene) XExtent() (minX, maxX float32) {
	first := true
	var pts []math.Vec3
	for _, obj := range s.objects {
		pts = obj.WorldSamples(pts)
		for _, p := range pts {
			if first || p.X < minX {
				minX = p.X
			}
			if first || p.X > maxX {
				maxX = p.X
			}
			first = false
		}
	}
	return minX, maxX
}
