// Package physics provides a minimal rigid-body host for floating objects.
//
// Bodies accumulate forces during a tick and integrate them with gravity
// when the world steps. Only linear motion is simulated; the application
// point of each force is recorded but produces no torque.
package physics

import "github.com/Faultbox/buoyancy/pkg/math"

// RigidBody is a dynamic or static object with a world transform.
// It satisfies the force sink and transform provider used by buoyancy.
type RigidBody struct {
	math.Transform
	Velocity math.Vec3
	Mass     float32
	Static   bool

	force     math.Vec3 // accumulated this tick
	lastPoint math.Vec3 // application point of the last force
}

// NewRigidBody returns a body with the given transform. Velocity is zero.
// A non-positive mass is replaced by 1. Static bodies ignore gravity and forces.
func NewRigidBody(xf math.Transform, mass float32, static bool) *RigidBody {
	if mass <= 0 {
		mass = 1
	}
	return &RigidBody{
		Transform: xf,
		Mass:      mass,
		Static:    static,
	}
}

// ApplyForceAtPosition accumulates force for the next integration.
func (b *RigidBody) ApplyForceAtPosition(force, worldPos math.Vec3) {
	b.force = b.force.Add(force)
	b.lastPoint = worldPos
}

// PendingForce returns the force accumulated since the last integration.
func (b *RigidBody) PendingForce() math.Vec3 {
	return b.force
}

// LastForcePoint returns where the most recent force was applied.
func (b *RigidBody) LastForcePoint() math.Vec3 {
	return b.lastPoint
}

// integrate advances the body by dt under gravity plus accumulated force,
// using semi-implicit Euler, then clears the accumulator.
func (b *RigidBody) integrate(dt float32, gravity math.Vec3) {
	defer b.clearForces()
	if b.Static {
		return
	}
	accel := gravity.Add(b.force.Scale(1 / b.Mass))
	b.Velocity = b.Velocity.Add(accel.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

func (b *RigidBody) clearForces() {
	b.force = math.Vec3{}
}
