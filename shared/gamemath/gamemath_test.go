package gamemath

import (
	"math"
	"testing"
)

func TestSanitizeElapsed(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{16.6, 16.6},
		{0, 0},
		{-5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := SanitizeElapsed(tt.in); got != tt.want {
			t.Errorf("SanitizeElapsed(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCursor(t *testing.T) {
	tests := []struct {
		px, size, want float64
	}{
		{0, 640, -1},
		{320, 640, 0},
		{640, 640, 1},
		{160, 640, -0.5},
		{-50, 640, -1},
		{900, 640, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := NormalizeCursor(tt.px, tt.size); got != tt.want {
			t.Errorf("NormalizeCursor(%v, %v) = %v, want %v", tt.px, tt.size, got, tt.want)
		}
	}
}

func TestClampAxis(t *testing.T) {
	if got := ClampAxis(math.NaN()); got != 0 {
		t.Errorf("ClampAxis(NaN) = %v, want 0", got)
	}
	if got := ClampAxis(3); got != 1 {
		t.Errorf("ClampAxis(3) = %v, want 1", got)
	}
	if got := ClampAxis(-0.25); got != -0.25 {
		t.Errorf("ClampAxis(-0.25) = %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp = %v, want 15", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp at 1 = %v, want 20", got)
	}
	if got := InverseLerp(10, 20, 25); got != 1 {
		t.Errorf("InverseLerp clamps, got %v", got)
	}
	if got := InverseLerp(5, 5, 5); got != 0 {
		t.Errorf("InverseLerp degenerate = %v", got)
	}
}
