package animations

import (
	"math"
	"testing"
)

func TestStripStaticNeverAdvances(t *testing.T) {
	tests := []struct {
		name  string
		strip *Strip
	}{
		{"single frame", NewStrip("tree1", 1, 12)},
		{"zero fps", NewStrip("palm", 8, 0)},
		{"negative fps", NewStrip("decor1", 4, -3)},
		{"zero frames", NewStrip("plante", 0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, dt := range []float64{0, 16, 500, 10000, math.NaN()} {
				if tt.strip.Advance(dt) {
					t.Errorf("Advance(%v) reported a change on a static strip", dt)
				}
			}
			if tt.strip.CurrentFrame != 0 {
				t.Errorf("CurrentFrame = %d, want 0", tt.strip.CurrentFrame)
			}
			if tt.strip.Offset() != 0 {
				t.Errorf("Offset = %v, want 0", tt.strip.Offset())
			}
		})
	}
}

func TestStripWrapScenario(t *testing.T) {
	s := NewStrip("bird", 4, 2)

	if !s.Advance(1999) {
		t.Fatal("expected frame change after 1999ms")
	}
	if s.CurrentFrame != 3 {
		t.Errorf("CurrentFrame = %d, want 3", s.CurrentFrame)
	}
	if s.AccumulatedMs != 499 {
		t.Errorf("AccumulatedMs = %v, want 499", s.AccumulatedMs)
	}
	if s.Offset() != 0.75 {
		t.Errorf("Offset = %v, want 0.75", s.Offset())
	}

	s.Advance(1)
	if s.CurrentFrame != 0 {
		t.Errorf("CurrentFrame after wrap = %d, want 0", s.CurrentFrame)
	}
	if s.AccumulatedMs != 0 {
		t.Errorf("AccumulatedMs after wrap = %v, want 0", s.AccumulatedMs)
	}
}

func TestStripFrameMatchesTotalElapsed(t *testing.T) {
	chunks := [][]float64{
		{1000},
		{250, 250, 250, 250},
		{16, 17, 16, 17, 934},
		{0, 0, 999, 1},
		{3750, 1250},
	}

	for _, seq := range chunks {
		s := NewStrip("character", 6, 4) // 250ms per frame
		total := 0.0
		for _, dt := range seq {
			s.Advance(dt)
			total += dt

			want := int(math.Floor(total/250)) % 6
			if s.CurrentFrame != want {
				t.Errorf("seq %v: after %vms frame = %d, want %d", seq, total, s.CurrentFrame, want)
			}
			if s.AccumulatedMs < 0 || s.AccumulatedMs >= s.FrameDurationMs() {
				t.Errorf("seq %v: AccumulatedMs = %v out of [0, %v)", seq, s.AccumulatedMs, s.FrameDurationMs())
			}
		}
	}
}

func TestStripIndependentInstances(t *testing.T) {
	a := NewStrip("a", 4, 10)
	b := NewStrip("b", 3, 5)

	for i := 0; i < 10; i++ {
		a.Advance(50)
		b.Advance(50)
	}

	// a: 500ms at 100ms/frame = 5 steps; b: 500ms at 200ms/frame = 2 steps.
	if a.CurrentFrame != 1 {
		t.Errorf("a.CurrentFrame = %d, want 1", a.CurrentFrame)
	}
	if b.CurrentFrame != 2 {
		t.Errorf("b.CurrentFrame = %d, want 2", b.CurrentFrame)
	}
}

func TestStripIgnoresMalformedElapsed(t *testing.T) {
	s := NewStrip("x", 4, 2)
	s.Advance(300)
	s.Advance(-1000)
	s.Advance(math.NaN())
	s.Advance(math.Inf(1))
	if s.CurrentFrame != 0 || s.AccumulatedMs != 300 {
		t.Errorf("got frame %d acc %v, want frame 0 acc 300", s.CurrentFrame, s.AccumulatedMs)
	}
}

func TestStripRestart(t *testing.T) {
	s := NewStrip("x", 4, 2)
	s.Advance(1200)
	s.Restart()
	if s.CurrentFrame != 0 || s.AccumulatedMs != 0 {
		t.Errorf("Restart left frame %d acc %v", s.CurrentFrame, s.AccumulatedMs)
	}
}
