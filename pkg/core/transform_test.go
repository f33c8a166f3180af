package core

import (
	"math"
	"testing"
)

func TestLookAt_ForwardAxis(t *testing.T) {
	tests := []struct {
		name   string
		target Vec3
	}{
		{name: "negative z", target: NewVec3(0, 0, -1)},
		{name: "non-normalized negative z", target: NewVec3(0, 0, -2)},
		{name: "diagonal", target: NewVec3(-1, -1, 0)},
		{name: "positive x", target: NewVec3(2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := tt.target.Normalize()
			up, _ := CoordinateSystem(direction)
			trafo := LookAt(NewVec3(0, 0, 0), tt.target, up)

			// Local +Z must map to the viewing direction
			forward := trafo.ApplyVector(NewVec3(0, 0, 1))
			if forward.Subtract(direction).Length() > 1e-9 {
				t.Errorf("Expected forward %v, got %v", direction, forward)
			}

			// Basis must stay orthonormal
			const tolerance = 1e-9
			if math.Abs(trafo.Right.Length()-1) > tolerance ||
				math.Abs(trafo.Up.Length()-1) > tolerance ||
				math.Abs(trafo.Forward.Length()-1) > tolerance {
				t.Errorf("Basis vectors not unit length: %+v", trafo)
			}
			if math.Abs(trafo.Right.Dot(trafo.Up)) > tolerance ||
				math.Abs(trafo.Right.Dot(trafo.Forward)) > tolerance ||
				math.Abs(trafo.Up.Dot(trafo.Forward)) > tolerance {
				t.Errorf("Basis vectors not orthogonal: %+v", trafo)
			}
		})
	}
}

func TestIdentityTransform(t *testing.T) {
	trafo := IdentityTransform()

	v := NewVec3(1, 2, 3)
	if got := trafo.ApplyVector(v); got != v {
		t.Errorf("Expected %v, got %v", v, got)
	}
	if got := trafo.Apply(v); got != v {
		t.Errorf("Expected %v, got %v", v, got)
	}
}

func TestTransform_ApplyIncludesTranslation(t *testing.T) {
	trafo := IdentityTransform()
	trafo.Origin = NewVec3(0, 0, 5)

	if got := trafo.Apply(NewVec3(1, 0, 0)); got != NewVec3(1, 0, 5) {
		t.Errorf("Expected (1,0,5), got %v", got)
	}
	// Vectors are unaffected by translation
	if got := trafo.ApplyVector(NewVec3(1, 0, 0)); got != NewVec3(1, 0, 0) {
		t.Errorf("Expected (1,0,0), got %v", got)
	}
}

func TestAnimatedTransform_Eval(t *testing.T) {
	start := IdentityTransform()
	end := IdentityTransform()
	end.Origin = NewVec3(10, 0, 0)

	animated := NewAnimatedTransform(start, end, 0, 1)

	tests := []struct {
		name           string
		time           float64
		expectedOrigin Vec3
	}{
		{name: "clamped before start", time: -1, expectedOrigin: NewVec3(0, 0, 0)},
		{name: "at start", time: 0, expectedOrigin: NewVec3(0, 0, 0)},
		{name: "midpoint", time: 0.5, expectedOrigin: NewVec3(5, 0, 0)},
		{name: "at end", time: 1, expectedOrigin: NewVec3(10, 0, 0)},
		{name: "clamped after end", time: 2, expectedOrigin: NewVec3(10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := animated.Eval(tt.time)
			if got.Origin.Subtract(tt.expectedOrigin).Length() > 1e-9 {
				t.Errorf("Expected origin %v, got %v", tt.expectedOrigin, got.Origin)
			}
		})
	}
}

func TestStaticTransform_IgnoresTime(t *testing.T) {
	trafo := LookAt(NewVec3(0, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0))
	static := NewStaticTransform(trafo)

	for _, time := range []float64{0, 0.5, 100} {
		if got := static.Eval(time); got != trafo {
			t.Errorf("Eval(%v): expected %+v, got %+v", time, trafo, got)
		}
	}
}
