package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"inside", 10, 0, 704, 10},
		{"below", -3, 0, 704, 0},
		{"above", 707.4, 0, 704, 704},
		{"edge", 704, 0, 704, 704},
		{"inverted range", 5, 0, -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	d := Distance(400, 300, 415, 315)
	if math.Abs(d-21.2132) > 1e-3 {
		t.Errorf("Expected ~21.213, got %f", d)
	}
	if Distance(1, 1, 1, 1) != 0 {
		t.Error("Expected zero distance for identical points")
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(400, 300, 48, 415, 315, 15) {
		t.Error("Expected overlap for close centers")
	}
	// Exactly touching is not a hit
	if CirclesOverlap(0, 0, 48, 63, 0, 15) {
		t.Error("Expected no overlap when distance equals radius sum")
	}
	if !CirclesOverlap(0, 0, 48, 62.999, 0, 15) {
		t.Error("Expected overlap just inside radius sum")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed must not produce a stuck generator")
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
}
