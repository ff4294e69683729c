// Package water provides the animated wave surface shared by floating bodies.
package water

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/buoyancy/pkg/math"
)

var (
	ErrInvalidWavelength = errors.New("wavelength must be nonzero")
	ErrNonFiniteParam    = errors.New("wave parameter is not finite")
)

// Params describes a sinusoidal wave travelling along the X axis.
type Params struct {
	Length    float32 // Horizontal wavelength divisor
	Amplitude float32 // Peak height above Y=0
	Speed     float32 // Phase advance per second
	Phase     float32 // Initial phase offset
}

// DefaultParams returns the wave used when nothing is configured.
func DefaultParams() Params {
	return Params{Length: 2, Amplitude: 1, Speed: 1}
}

// Validate reports whether the parameters produce a finite height field.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"length", p.Length},
		{"amplitude", p.Amplitude},
		{"speed", p.Speed},
		{"phase", p.Phase},
	} {
		if math32.IsNaN(f.v) || math32.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonFiniteParam, f.name, f.v)
		}
	}
	if p.Length == 0 {
		return ErrInvalidWavelength
	}
	return nil
}

// WaveField is a time-varying height function over the XZ plane.
// Height at (x, y, z) is Amplitude * sin(x/Length + phase), independent of y and z.
//
// A scene owns one field and calls Advance once per tick before any body
// queries it; all other methods are read-only.
type WaveField struct {
	length    float32
	amplitude float32
	speed     float32
	phase     float32
}

// NewWaveField creates a wave field after validating params.
func NewWaveField(p Params) (*WaveField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &WaveField{
		length:    p.Length,
		amplitude: p.Amplitude,
		speed:     p.Speed,
		phase:     p.Phase,
	}, nil
}

// Advance moves the wave forward by dt seconds.
func (w *WaveField) Advance(dt float32) {
	w.phase += dt * w.speed
}

// Phase returns the accumulated phase offset.
func (w *WaveField) Phase() float32 {
	return w.phase
}

// Params returns the field's parameters with the current phase.
func (w *WaveField) Params() Params {
	return Params{Length: w.length, Amplitude: w.amplitude, Speed: w.speed, Phase: w.phase}
}

// HeightAt returns the surface height above the horizontal position of p.
func (w *WaveField) HeightAt(p math.Vec3) float32 {
	return w.amplitude * math32.Sin(p.X/w.length+w.phase)
}

// IsUnderwater reports whether p lies strictly below the surface.
func (w *WaveField) IsUnderwater(p math.Vec3) bool {
	return p.Y < w.HeightAt(p)
}

// DepthAt returns how far p is below the surface, or 0 at or above it.
// The depth is not clamped; a point far below the surface reports its full depth.
func (w *WaveField) DepthAt(p math.Vec3) float32 {
	h := w.HeightAt(p)
	if p.Y < h {
		return h - p.Y
	}
	return 0
}

// FilterUnderwater returns the points that are underwater, in input order.
func (w *WaveField) FilterUnderwater(points []math.Vec3) []math.Vec3 {
	return w.AppendUnderwater(nil, points)
}

// AppendUnderwater appends the underwater points to dst, in input order,
// and returns the extended slice.
func (w *WaveField) AppendUnderwater(dst, points []math.Vec3) []math.Vec3 {
	for _, p := range points {
		if w.IsUnderwater(p) {
			dst = append(dst, p)
		}
	}
	return dst
}
