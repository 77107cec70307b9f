package petal

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestBuiltinInterpolationsHitEndpoints(t *testing.T) {
	for _, name := range InterpolationNames() {
		i, ok := InterpolationNamed(name)
		if !ok {
			t.Fatalf("InterpolationNamed(%q) not found", name)
		}
		// Expo curves are offset by 0.001 at their open end.
		if got := i.Apply(0); math.Abs(got) > 0.002 {
			t.Errorf("%s(0) = %v, want ~0", name, got)
		}
		if got := i.Apply(1); math.Abs(got-1) > 0.002 {
			t.Errorf("%s(1) = %v, want ~1", name, got)
		}
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assertNear(t, "linear", Linear.Apply(x), x)
	}
}

func TestNilInterpolationIsLinear(t *testing.T) {
	var i *Interpolation
	assertNear(t, "nil apply", i.Apply(0.3), 0.3)
	if i.Name() != "linear" {
		t.Errorf("nil name = %q, want linear", i.Name())
	}
}

func TestEaseInOutMidpoint(t *testing.T) {
	assertNear(t, "easeIn(0.5)", EaseIn.Apply(0.5), 0.25)
	assertNear(t, "easeOut(0.5)", EaseOut.Apply(0.5), 0.75)
	assertNear(t, "easeInOut(0.5)", EaseInOut.Apply(0.5), 0.5)
}

func TestRegisterInterpolation(t *testing.T) {
	step := NewInterpolation("testStep", func(t, b, c, d float32) float32 {
		if t < d/2 {
			return b
		}
		return b + c
	})
	RegisterInterpolation(step)
	defer delete(interpolations, "testStep")

	got, ok := InterpolationNamed("testStep")
	if !ok || got != step {
		t.Fatal("registered interpolation not found")
	}
	assertNear(t, "step(0.4)", got.Apply(0.4), 0)
	assertNear(t, "step(0.6)", got.Apply(0.6), 1)
}

func TestRegisterUnnamedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic registering unnamed interpolation")
		}
	}()
	RegisterInterpolation(NewInterpolation("", ease.Linear))
}

func TestLinearKeepsDoublePrecision(t *testing.T) {
	// 0.1 is not representable in float32; a round trip would change it.
	for _, x := range []float64{0.1, 1.0 / 3, 0.7000000001} {
		if got := Linear.Apply(x); got != x {
			t.Errorf("Linear.Apply(%v) = %v, want exact", x, got)
		}
	}
}
