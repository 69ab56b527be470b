package game

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRectFromNodeUsesHalfScale(t *testing.T) {
	r := RectFromNode(&Transform{
		Position: Vec3{X: 3, Y: 7, Z: -2},
		Scale:    Vec3{X: 4, Y: 9, Z: 6},
	})
	if r == nil {
		t.Fatalf("expected rect for node")
	}
	if r.CenterX != 3 || r.CenterZ != -2 || r.HalfWidth != 2 || r.HalfHeight != 3 {
		t.Fatalf("unexpected rect %+v", *r)
	}
}

func TestContainsIsInclusiveAndStrictIsNot(t *testing.T) {
	r := &Rect{CenterX: 0, CenterZ: 0, HalfWidth: 1, HalfHeight: 2}
	if !r.Contains(1, 2) || !r.Contains(-1, -2) {
		t.Fatalf("expected edges to be inside for inclusive test")
	}
	if r.ContainsStrict(1, 0) || r.ContainsStrict(0, -2) {
		t.Fatalf("expected edges to be outside for strict test")
	}
	if !r.ContainsStrict(0.5, 1.5) {
		t.Fatalf("expected interior point inside strict test")
	}
	if r.Contains(1.01, 0) {
		t.Fatalf("expected point past the edge to be outside")
	}
}

func TestMissingNodeRectAlwaysFails(t *testing.T) {
	r := RectFromNode(nil)
	if r != nil {
		t.Fatalf("expected nil rect for missing node")
	}
	if r.Contains(0, 0) || r.ContainsStrict(0, 0) {
		t.Fatalf("expected containment against missing rect to fail")
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	v := Vec3{X: 1}.RotateY(90)
	if !approx(v.X, 0) || !approx(v.Z, -1) {
		t.Fatalf("expected +X to rotate to -Z, got %+v", v)
	}
	v = Vec3{Z: 1}.RotateY(90)
	if !approx(v.X, 1) || !approx(v.Z, 0) {
		t.Fatalf("expected +Z to rotate to +X, got %+v", v)
	}
}

func TestNormalizeDeg(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, -90: 270, 450: 90, -720: 0}
	for in, want := range cases {
		if got := normalizeDeg(in); !approx(got, want) {
			t.Fatalf("normalizeDeg(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizeZeroVectorStaysZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected zero vector, got %+v", got)
	}
}
