package vmath

import (
	"math"
	"testing"
)

// TestMagnitude verifies vector length calculation
func TestMagnitude(t *testing.T) {
	if got := Magnitude(3, 4); got != 5 {
		t.Errorf("Magnitude(3,4) = %v, want 5", got)
	}
	if got := Magnitude(0, 0); got != 0 {
		t.Errorf("Magnitude(0,0) = %v, want 0", got)
	}
}

// TestNormalizeZeroSafe verifies zero vector does not divide by zero
func TestNormalizeZeroSafe(t *testing.T) {
	nx, ny := Normalize(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Normalize(0,0) = (%v,%v), want (0,0)", nx, ny)
	}

	nx, ny = Normalize(10, 0)
	if nx != 1 || ny != 0 {
		t.Errorf("Normalize(10,0) = (%v,%v), want (1,0)", nx, ny)
	}
}

// TestClampMagnitude verifies clamping preserves direction
func TestClampMagnitude(t *testing.T) {
	cx, cy := ClampMagnitude(30, 40, 5)
	if math.Abs(cx-3) > 1e-9 || math.Abs(cy-4) > 1e-9 {
		t.Errorf("ClampMagnitude(30,40,5) = (%v,%v), want (3,4)", cx, cy)
	}

	// Under the limit: unchanged
	cx, cy = ClampMagnitude(3, 4, 10)
	if cx != 3 || cy != 4 {
		t.Errorf("ClampMagnitude(3,4,10) = (%v,%v), want (3,4)", cx, cy)
	}
}

// TestReflectAxes verifies single-component reflection
func TestReflectAxes(t *testing.T) {
	vx, vy := ReflectAxisX(5, -2)
	if vx != -5 || vy != -2 {
		t.Errorf("ReflectAxisX(5,-2) = (%v,%v), want (-5,-2)", vx, vy)
	}
	vx, vy = ReflectAxisY(5, -2)
	if vx != 5 || vy != 2 {
		t.Errorf("ReflectAxisY(5,-2) = (%v,%v), want (5,2)", vx, vy)
	}
}

// TestCollideAABBSeparated verifies non-overlapping boxes report no collision
func TestCollideAABBSeparated(t *testing.T) {
	if side := CollideAABB(0, 0, 10, 10, 20, 0, 10, 10); side != SideNone {
		t.Errorf("separated boxes collided: %v", side)
	}
	// Touching edges do not overlap
	if side := CollideAABB(0, 0, 10, 10, 10, 0, 10, 10); side != SideNone {
		t.Errorf("touching boxes collided: %v", side)
	}
}

// TestCollideAABBSides verifies the reported side matches approach direction
func TestCollideAABBSides(t *testing.T) {
	cases := []struct {
		name   string
		bx, by float64
		want   Side
	}{
		{"from left", -9, 0, SideLeft},
		{"from right", 9, 0, SideRight},
		{"from above", 0, -9, SideTop},
		{"from below", 0, 9, SideBottom},
	}
	for _, tc := range cases {
		if got := CollideAABB(0, 0, 10, 10, tc.bx, tc.by, 10, 10); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
