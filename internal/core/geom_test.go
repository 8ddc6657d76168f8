package core

import (
	"math"
	"testing"
)

func TestPointDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point2D
		expected float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"axis aligned x", Pt(0, 0), Pt(3, 0), 3},
		{"axis aligned z", Pt(0, -2), Pt(0, 2), 4},
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Dist(tc.b)
			if math.Abs(result-tc.expected) > 1e-12 {
				t.Errorf("Dist() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if tc.b.Dist(tc.a) != result {
				t.Errorf("Dist() is not symmetric for %v, %v", tc.a, tc.b)
			}
			if sq := tc.a.DistSq(tc.b); math.Abs(sq-tc.expected*tc.expected) > 1e-9 {
				t.Errorf("DistSq() = %v, expected %v", sq, tc.expected*tc.expected)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Pt(3, -4))
	if p != Pt(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", p)
	}

	p = Pt(1, 2).Sub(Pt(3, -4))
	if p != Pt(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2, 6)", p)
	}

	p = Pt(1.5, -2).Scale(2)
	if p != Pt(3, -4) {
		t.Errorf("Scale() = %v, expected (3, -4)", p)
	}

	if l := Pt(3, 4).Len(); l != 5 {
		t.Errorf("Len() = %v, expected 5", l)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(-18.5, -18, 18) != -18 {
		t.Error("ClampF(-18.5, -18, 18) should be -18")
	}
	if ClampF(3.25, -18, 18) != 3.25 {
		t.Error("ClampF(3.25, -18, 18) should be 3.25")
	}
}
