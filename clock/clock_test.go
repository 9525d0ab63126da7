package clock

import (
	"math"
	"testing"
)

func TestClockFirstTickIsZero(t *testing.T) {
	var c Clock
	if got := c.Tick(1234); got != 0 {
		t.Errorf("first tick = %v, want 0", got)
	}
	if got := c.Tick(1250); got != 16 {
		t.Errorf("second tick = %v, want 16", got)
	}
}

func TestClockClampsRegressingAndInvalidTimestamps(t *testing.T) {
	tests := []struct {
		name string
		ts   []float64
		want []float64
	}{
		{"monotonic", []float64{0, 10, 25}, []float64{0, 10, 15}},
		{"regressing", []float64{100, 50, 60}, []float64{0, 0, 10}},
		{"nan treated as zero", []float64{10, math.NaN(), 5}, []float64{0, 0, 5}},
		{"inf treated as zero", []float64{0, math.Inf(1), 3}, []float64{0, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			for i, ts := range tt.ts {
				if got := c.Tick(ts); got != tt.want[i] {
					t.Errorf("tick %d (%v) = %v, want %v", i, ts, got, tt.want[i])
				}
			}
		})
	}
}

func TestClockReset(t *testing.T) {
	var c Clock
	c.Tick(10)
	c.Tick(20)
	c.Reset()
	if got := c.Tick(500); got != 0 {
		t.Errorf("tick after reset = %v, want 0", got)
	}
}

func TestTickSource(t *testing.T) {
	var s TickSource
	for i := 0; i < 60; i++ {
		s.Advance(60)
	}
	if got := s.Now(60); got != 1000 {
		t.Errorf("after 60 ticks at 60 TPS = %v ms, want 1000", got)
	}
	if got := s.Advance(0); got != 0 {
		t.Errorf("Advance(0) = %v, want 0", got)
	}
	if got := s.Now(60); got != 1000 {
		t.Errorf("Advance(0) must not count a tick, now = %v", got)
	}
}
