// Package buoyancy floats rigid bodies on a wave field.
//
// A Body samples a uniform lattice of points inside its bounding box once.
// Each tick the points under the surface push the body up with a force
// proportional to their depth, applied at the centroid of the submerged points.
package buoyancy

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/buoyancy/pkg/math"
)

var (
	ErrInvalidGridDimension = errors.New("grid dimensions must be at least 1")
	ErrInvalidBounds        = errors.New("bounds must be finite")
	ErrInvalidForce         = errors.New("total force must be finite")
)

// Bounds is an axis-aligned box in the body's local frame.
type Bounds struct {
	Center math.Vec3
	Size   math.Vec3
}

// Grid is the number of sample points along each local axis.
type Grid struct {
	X, Y, Z int
}

// Count returns the total number of sample points.
func (g Grid) Count() int {
	return g.X * g.Y * g.Z
}

func (g Grid) validate() error {
	if g.X < 1 || g.Y < 1 || g.Z < 1 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrInvalidGridDimension, g.X, g.Y, g.Z)
	}
	return nil
}

// ForceSink receives the buoyant force. It is typically the rigid body.
type ForceSink interface {
	ApplyForceAtPosition(force, worldPos math.Vec3)
}

// Transform maps between the body's local frame and world space.
type Transform interface {
	ToWorld(local math.Vec3) math.Vec3
	ToLocal(world math.Vec3) math.Vec3
}

// Field is the part of the wave field a body reads during a step.
type Field interface {
	FilterUnderwater(points []math.Vec3) []math.Vec3
	DepthAt(p math.Vec3) float32
}

// StepResult describes the force produced by one Step.
type StepResult struct {
	Submerged int       // Sample points under the surface
	Force     float32   // Magnitude of the upward force
	Position  math.Vec3 // World-space application point
	Applied   bool      // False when nothing was submerged
}

// Body holds the sample lattice for one floating object.
// The lattice and per-point force are fixed at construction.
type Body struct {
	bounds        Bounds
	grid          Grid
	totalForce    float32
	forcePerPoint float32
	points        []math.Vec3

	world []math.Vec3 // scratch, reused each step
	local []math.Vec3 // scratch, reused each step
}

// New builds a body from its bounding box, lattice resolution and the force
// it would produce with every point one unit under the surface.
func New(bounds Bounds, grid Grid, totalForce float32) (*Body, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}
	if !bounds.Center.IsFinite() || !bounds.Size.IsFinite() {
		return nil, fmt.Errorf("%w: center=%v size=%v", ErrInvalidBounds, bounds.Center, bounds.Size)
	}
	if math32.IsNaN(totalForce) || math32.IsInf(totalForce, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidForce, totalForce)
	}

	n := grid.Count()
	b := &Body{
		bounds:        bounds,
		grid:          grid,
		totalForce:    totalForce,
		forcePerPoint: totalForce / float32(n),
		points:        samplePoints(bounds, grid),
		world:         make([]math.Vec3, n),
		local:         make([]math.Vec3, 0, n),
	}
	return b, nil
}

// samplePoints lays out the lattice from the box's lower corner. The upper
// face is not sampled: index i maps to min + size*i/n for i in [0, n).
func samplePoints(bounds Bounds, grid Grid) []math.Vec3 {
	c, s := bounds.Center, bounds.Size
	step := math.Vec3{
		X: s.X / float32(grid.X),
		Y: s.Y / float32(grid.Y),
		Z: s.Z / float32(grid.Z),
	}

	points := make([]math.Vec3, 0, grid.Count())
	for i := 0; i < grid.X; i++ {
		for j := 0; j < grid.Y; j++ {
			for k := 0; k < grid.Z; k++ {
				points = append(points, math.Vec3{
					X: c.X - s.X/2 + step.X*float32(i),
					Y: c.Y - s.Y/2 + step.Y*float32(j),
					Z: c.Z - s.Z/2 + step.Z*float32(k),
				})
			}
		}
	}
	return points
}

// Bounds returns the box the lattice was built from.
func (b *Body) Bounds() Bounds { return b.bounds }

// Grid returns the lattice resolution.
func (b *Body) Grid() Grid { return b.grid }

// TotalForce returns the configured force for full unit-depth submersion.
func (b *Body) TotalForce() float32 { return b.totalForce }

// ForcePerPoint returns the force one sample point produces at unit depth.
func (b *Body) ForcePerPoint() float32 { return b.forcePerPoint }

// SamplePoints returns a copy of the local-space lattice.
func (b *Body) SamplePoints() []math.Vec3 {
	out := make([]math.Vec3, len(b.points))
	copy(out, b.points)
	return out
}

// Step computes this tick's buoyant force and applies it to sink.
// field must already be advanced for the tick. Nothing is applied when no
// sample point is under the surface.
//
// The centroid is averaged in local space while depths are sampled in world
// space, so the application point is exact only for unrotated, unscaled bodies.
func (b *Body) Step(xf Transform, sink ForceSink, field Field) StepResult {
	for i, p := range b.points {
		b.world[i] = xf.ToWorld(p)
	}

	submerged := field.FilterUnderwater(b.world)
	if len(submerged) == 0 {
		return StepResult{}
	}

	b.local = b.local[:0]
	for _, p := range submerged {
		b.local = append(b.local, xf.ToLocal(p))
	}
	center := math.Mean(b.local)

	var force float32
	for _, p := range b.local {
		force += b.forcePerPoint * field.DepthAt(xf.ToWorld(p))
	}

	pos := xf.ToWorld(center)
	sink.ApplyForceAtPosition(math.Up.Scale(force), pos)

	return StepResult{
		Submerged: len(submerged),
		Force:     force,
		Position:  pos,
		Applied:   true,
	}
}
