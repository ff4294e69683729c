package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/buoyancy/internal/buoyancy"
	"github.com/Faultbox/buoyancy/pkg/math"
)

// RigidBody is the host collaborator for buoyancy bodies.
var (
	_ buoyancy.ForceSink = (*RigidBody)(nil)
	_ buoyancy.Transform = (*RigidBody)(nil)
)

func TestNewRigidBodyDefaultsMass(t *testing.T) {
	b := NewRigidBody(math.NewTransform(math.Vec3{}), 0, false)
	assert.Equal(t, float32(1), b.Mass)
}

func TestGravityOnly(t *testing.T) {
	w := NewWorld()
	b := NewRigidBody(math.NewTransform(math.Vec3{Y: 10}), 2, false)
	w.AddBody(b)

	w.Step(0.5)

	assert.InDelta(t, -9.81*0.5, b.Velocity.Y, 1e-5)
	assert.InDelta(t, 10-9.81*0.25, b.Position.Y, 1e-5)
}

func TestForceIsAccumulatedAndCleared(t *testing.T) {
	w := &World{}
	b := NewRigidBody(math.NewTransform(math.Vec3{}), 4, false)
	w.AddBody(b)

	b.ApplyForceAtPosition(math.Vec3{Y: 6}, math.Vec3{X: 1})
	b.ApplyForceAtPosition(math.Vec3{Y: 2}, math.Vec3{X: 2})
	assert.Equal(t, math.Vec3{Y: 8}, b.PendingForce())
	assert.Equal(t, math.Vec3{X: 2}, b.LastForcePoint())

	w.Step(1)

	assert.Equal(t, math.Vec3{Y: 2}, b.Velocity)
	assert.Equal(t, math.Vec3{Y: 2}, b.Position)
	assert.Equal(t, math.Vec3{}, b.PendingForce())
}

func TestStaticBodyDoesNotMove(t *testing.T) {
	w := NewWorld()
	b := NewRigidBody(math.NewTransform(math.Vec3{Y: 3}), 1, true)
	w.AddBody(b)

	b.ApplyForceAtPosition(math.Vec3{Y: 100}, math.Vec3{})
	w.Step(1)

	assert.Equal(t, math.Vec3{Y: 3}, b.Position)
	assert.Equal(t, math.Vec3{}, b.PendingForce())
}

func TestRigidBodyTransform(t *testing.T) {
	b := NewRigidBody(math.NewTransform(math.Vec3{X: 5, Y: 1}), 1, false)
	assert.Equal(t, math.Vec3{X: 6, Y: 1, Z: 1}, b.ToWorld(math.Vec3{X: 1, Z: 1}))
	assert.Equal(t, math.Vec3{X: 1, Z: 1}, b.ToLocal(math.Vec3{X: 6, Y: 1, Z: 1}))
}
