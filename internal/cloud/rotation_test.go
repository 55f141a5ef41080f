package cloud

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestRotationRoundTrip(t *testing.T) {
	angles := [][2]float64{{0, 0}, {0.01, -0.02}, {0.5, 0.3}, {-1.2, 2.4}, {math.Pi, -math.Pi / 2}}
	for _, a := range angles {
		r := NewRotation(a[0], a[1])
		for _, v := range Layout(40) {
			v = v.Mul(120)
			if back := r.Invert(r.Apply(v)); !vecNear(back, v) {
				t.Fatalf("angles %v: Invert(Apply(%v)) = %v", a, v, back)
			}
		}
	}
}

func TestRotationMatchesMatrixComposition(t *testing.T) {
	r := NewRotation(0.37, -0.81)
	// A turn about y by AngleX applied after a tilt about x by AngleY.
	m := mgl64.Rotate3DY(r.AngleX).Mul3(mgl64.Rotate3DX(r.AngleY))
	for _, v := range Layout(25) {
		if got, want := r.Apply(v), m.Mul3x1(v); !vecNear(got, want) {
			t.Fatalf("Apply(%v) = %v, matrix gives %v", v, got, want)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := NewRotation(0.02, 0.03)
	v := mgl64.Vec3{10, -20, 30}
	want := v.Len()
	for i := 0; i < 1000; i++ {
		v = r.Apply(v)
	}
	if !scalar.EqualWithinAbs(v.Len(), want, 1e-9) {
		t.Fatalf("length drifted from %v to %v", want, v.Len())
	}
}

func TestPointerRotation(t *testing.T) {
	center := mgl64.Vec2{240, 160}
	speed := AngularSpeed(0.5, center)

	r := PointerRotation(speed, 0.5, center)
	if !scalar.EqualWithinAbs(r.AngleX, 0, 1e-15) || !scalar.EqualWithinAbs(r.AngleY, 0, 1e-15) {
		t.Fatalf("pointer at centre gave angles %v, %v", r.AngleX, r.AngleY)
	}

	r = PointerRotation(speed, 0.5, mgl64.Vec2{0, 0})
	if !scalar.EqualWithinAbs(r.AngleX, -0.5*degToRad, 1e-15) {
		t.Fatalf("AngleX at origin = %v", r.AngleX)
	}
	if !scalar.EqualWithinAbs(r.AngleY, 0.5*degToRad, 1e-15) {
		t.Fatalf("AngleY at origin = %v", r.AngleY)
	}

	r = PointerRotation(speed, 0.5, mgl64.Vec2{480, 320})
	if !scalar.EqualWithinAbs(r.AngleX, 0.5*degToRad, 1e-15) || !scalar.EqualWithinAbs(r.AngleY, -0.5*degToRad, 1e-15) {
		t.Fatalf("far corner gave angles %v, %v", r.AngleX, r.AngleY)
	}
}

func TestAngularSpeedZeroViewport(t *testing.T) {
	if s := AngularSpeed(0.5, mgl64.Vec2{}); s != (mgl64.Vec2{}) {
		t.Fatalf("AngularSpeed with empty viewport = %v", s)
	}
}
