package globetrace

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); !vecNear(got, Vec3{5, -3, 9}) {
		t.Errorf("Add() = %v, want {5 -3 9}", got)
	}
	if got := a.Sub(b); !vecNear(got, Vec3{-3, 7, -3}) {
		t.Errorf("Sub() = %v, want {-3 7 -3}", got)
	}
	if got := a.Scale(2); !vecNear(got, Vec3{2, 4, 6}) {
		t.Errorf("Scale(2) = %v, want {2 4 6}", got)
	}
	if got := a.Dot(b); math.Abs(got-12) > epsilon {
		t.Errorf("Dot() = %v, want 12", got)
	}
	if got := a.Norm2(); math.Abs(got-14) > epsilon {
		t.Errorf("Norm2() = %v, want 14", got)
	}
}

func TestVec3Unit(t *testing.T) {
	got := Vec3{3, 0, 4}.Unit()
	if !vecNear(got, Vec3{0.6, 0, 0.8}) {
		t.Errorf("Unit() = %v, want {0.6 0 0.8}", got)
	}
	if n := got.Norm2(); math.Abs(n-1) > epsilon {
		t.Errorf("Unit().Norm2() = %v, want 1", n)
	}
}

func TestVec3Rotations(t *testing.T) {
	c := math.Cos(math.Pi / 2)
	s := math.Sin(math.Pi / 2)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"XY quarter turn", Vec3{1, 0, 0}.RotXY(c, s), Vec3{0, 1, 0}},
		{"YZ quarter turn", Vec3{0, 1, 0}.RotYZ(c, s), Vec3{0, 0, 1}},
		{"ZX quarter turn", Vec3{0, 0, 1}.RotZX(c, s), Vec3{1, 0, 0}},
		{"XY leaves Z", Vec3{0, 0, 5}.RotXY(c, s), Vec3{0, 0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3RotationPreservesLength(t *testing.T) {
	v := Vec3{1, 2, 3}
	c := math.Cos(0.7)
	s := math.Sin(0.7)

	for _, r := range []Vec3{v.RotXY(c, s), v.RotYZ(c, s), v.RotZX(c, s)} {
		if math.Abs(r.Norm2()-v.Norm2()) > epsilon {
			t.Errorf("rotation changed Norm2: %v -> %v", v.Norm2(), r.Norm2())
		}
	}
}

func TestRaySphere(t *testing.T) {
	tests := []struct {
		name    string
		o, u, c Vec3
		r       float64
		want    Vec3
		wantHit bool
	}{
		{
			"head-on hit",
			Vec3{0, 0, 5}, Vec3{0, 0, -1}, Vec3{}, 1,
			Vec3{0, 0, 1}, true,
		},
		{
			"grazing miss",
			Vec3{0, 2, 5}, Vec3{0, 0, -1}, Vec3{}, 1,
			Vec3{}, false,
		},
		{
			"sphere behind origin",
			Vec3{0, 0, 5}, Vec3{0, 0, 1}, Vec3{}, 1,
			Vec3{}, false,
		},
		{
			"unnormalized direction",
			Vec3{0, 0, 5}, Vec3{0, 0, -10}, Vec3{}, 1,
			Vec3{0, 0, 1}, true,
		},
		{
			"offset center",
			Vec3{3, 0, 5}, Vec3{0, 0, -1}, Vec3{3, 0, 0}, 2,
			Vec3{3, 0, 2}, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := raySphere(tt.o, tt.u, tt.c, tt.r)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && !vecNear(got, tt.want) {
				t.Errorf("hit point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSphereNormal(t *testing.T) {
	n := sphereNormal(Vec3{}, 2, Vec3{0, 2, 0})
	if !vecNear(n, Vec3{0, 1, 0}) {
		t.Errorf("sphereNormal() = %v, want {0 1 0}", n)
	}
}
