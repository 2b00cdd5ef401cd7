package service

import (
	"math"
	"testing"
)

func TestDistanceIdentity(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{45.75, 4.85},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Fatalf("distance from (%v,%v) to itself = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	ab := Distance(45.75, 4.85, 48.8566, 2.3522)
	ba := Distance(48.8566, 2.3522, 45.75, 4.85)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceNonNegative(t *testing.T) {
	if d := Distance(-45, -170, 45, 170); d < 0 {
		t.Fatalf("negative distance %v", d)
	}
}

// Lyon to Paris is roughly 393 km as the crow flies.
func TestDistanceLyonParis(t *testing.T) {
	d := Distance(45.75, 4.85, 48.8566, 2.3522)
	if d < 390 || d > 395 {
		t.Fatalf("Lyon-Paris distance = %v km, want within [390, 395]", d)
	}
}

func TestDistanceFromMissingCoordinates(t *testing.T) {
	lat := 45.75
	lng := 4.85
	if got := DistanceFrom(nil, nil, 48.85, 2.35); got != nil {
		t.Fatalf("expected nil distance without viewer location, got %v", *got)
	}
	if got := DistanceFrom(&lat, nil, 48.85, 2.35); got != nil {
		t.Fatalf("expected nil distance with partial viewer location, got %v", *got)
	}
	got := DistanceFrom(&lat, &lng, 48.8566, 2.3522)
	if got == nil {
		t.Fatal("expected a distance with a full viewer location")
	}
	if *got < 390 || *got > 395 {
		t.Fatalf("unexpected distance %v", *got)
	}
}
