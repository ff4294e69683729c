package physics

import "github.com/Faultbox/buoyancy/pkg/math"

// StandardGravity is Earth gravity along -Y.
var StandardGravity = math.Vec3{Y: -9.81}

// World holds a set of bodies and integrates them each step.
type World struct {
	Gravity math.Vec3
	Bodies  []*RigidBody
}

// NewWorld returns a world with standard gravity.
func NewWorld() *World {
	return &World{Gravity: StandardGravity}
}

// AddBody appends a body to the world. Order is preserved.
func (w *World) AddBody(b *RigidBody) {
	w.Bodies = append(w.Bodies, b)
}

// Step integrates every body by dt seconds and clears their forces.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		b.integrate(dt, w.Gravity)
	}
}
