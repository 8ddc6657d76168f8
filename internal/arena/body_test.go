package arena

import (
	"testing"

	"github.com/vovakirdan/pickup-arena/internal/core"
)

func TestBodyPushAndIntegrate(t *testing.T) {
	b := NewBody(core.Pt(0, 0), 0.5)
	b.Push(core.Pt(1, 0), 10, 0.5)
	if b.Vel != core.Pt(5, 0) {
		t.Fatalf("Vel = %v, expected (5, 0)", b.Vel)
	}

	b.Integrate(1, 0, core.Pt(-10, -10), core.Pt(10, 10))
	if b.Pos != core.Pt(5, 0) {
		t.Errorf("Pos = %v, expected (5, 0)", b.Pos)
	}
}

func TestBodyPushNormalizesDiagonal(t *testing.T) {
	b := NewBody(core.Pt(0, 0), 0.5)
	b.Push(core.Pt(1, 1), 1, 1)
	if l := b.Vel.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("|Vel| = %v, expected 1", l)
	}
}

func TestBodyZeroPush(t *testing.T) {
	b := NewBody(core.Pt(0, 0), 0.5)
	b.Vel = core.Pt(2, 3)
	b.Push(core.Point2D{}, 100, 1)
	if b.Vel != core.Pt(2, 3) {
		t.Errorf("Vel = %v, expected unchanged", b.Vel)
	}
}

func TestBodyDrag(t *testing.T) {
	b := NewBody(core.Pt(0, 0), 0.5)
	b.Vel = core.Pt(4, 0)
	b.Integrate(0.5, 1, core.Pt(-100, -100), core.Pt(100, 100))
	if b.Vel != core.Pt(2, 0) {
		t.Errorf("Vel = %v, expected (2, 0)", b.Vel)
	}

	// Drag never reverses motion
	b.Integrate(1, 10, core.Pt(-100, -100), core.Pt(100, 100))
	if b.Vel != (core.Point2D{}) {
		t.Errorf("Vel = %v, expected zero", b.Vel)
	}
}

func TestBodyWalls(t *testing.T) {
	tests := []struct {
		name        string
		vel         core.Point2D
		expectedPos core.Point2D
		expectedVel core.Point2D
	}{
		{"right wall", core.Pt(50, 1), core.Pt(2, 1), core.Pt(0, 1)},
		{"left wall", core.Pt(-50, 1), core.Pt(-2, 1), core.Pt(0, 1)},
		{"bottom wall", core.Pt(1, 50), core.Pt(1, 2), core.Pt(1, 0)},
		{"top wall", core.Pt(1, -50), core.Pt(1, -2), core.Pt(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(core.Pt(0, 0), 0.5)
			b.Vel = tc.vel
			b.Integrate(1, 0, core.Pt(-2, -2), core.Pt(2, 2))
			if b.Pos != tc.expectedPos {
				t.Errorf("Pos = %v, expected %v", b.Pos, tc.expectedPos)
			}
			if b.Vel != tc.expectedVel {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.expectedVel)
			}
		})
	}
}
