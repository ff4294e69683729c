package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3MulDiv(t *testing.T) {
	v := Vec3{2, 4, 6}
	s := Vec3{2, 0.5, 3}
	if got, want := v.Mul(s), (Vec3{4, 2, 18}); got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
	if got, want := v.Div(s), (Vec3{1, 8, 2}); got != want {
		t.Errorf("Vec3.Div() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec3{0, math32.NaN(), 0}).IsFinite() {
		t.Error("NaN component not detected")
	}
	if (Vec3{math32.Inf(1), 0, 0}).IsFinite() {
		t.Error("Inf component not detected")
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != (Vec3{}) {
		t.Errorf("Mean(nil) = %v, want zero", got)
	}
	pts := []Vec3{{0, 0, 0}, {2, 4, -2}, {4, 2, 2}}
	if got, want := Mean(pts), (Vec3{2, 2, 0}); got != want {
		t.Errorf("Mean() = %v, want %v", got, want)
	}
}
