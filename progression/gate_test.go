package progression

import (
	"math"
	"testing"
)

func TestGateFiresOnce(t *testing.T) {
	var g Gate
	calls := []struct {
		started  bool
		progress float64
		want     bool
	}{
		{false, 0, false},
		{false, 1, false},
		{true, 0.4, false},
		{true, 0.999, false},
		{true, 1, true},
		{true, 1, false},
		{true, 1, false},
		{false, 1, false},
	}

	for i, c := range calls {
		if got := g.Check(c.started, c.progress); got != c.want {
			t.Errorf("call %d Check(%v, %v) = %v, want %v", i, c.started, c.progress, got, c.want)
		}
	}
	if !g.Fired() {
		t.Error("Fired() = false after firing")
	}
}

func TestGateFiresOnCompletionTick(t *testing.T) {
	e := NewEngine(testSettings())
	var g Gate

	e.Start()
	fired := 0
	firedAt := 0.0
	for i := 0; i < 400; i++ {
		f := e.Update(0, 10, 0, 0)
		if g.Check(e.Started(), f.Progress) {
			fired++
			firedAt = e.ElapsedMs()
		}
	}
	if fired != 1 {
		t.Fatalf("gate fired %d times, want 1", fired)
	}
	if firedAt != testSettings().DurationMs {
		t.Errorf("gate fired at %vms, want %v", firedAt, testSettings().DurationMs)
	}
}

func TestGateIgnoresNaNProgress(t *testing.T) {
	var g Gate
	if g.Check(true, math.NaN()) {
		t.Error("gate fired on NaN progress")
	}
}

func TestGateReset(t *testing.T) {
	var g Gate
	g.Check(true, 1)
	g.Reset()
	if !g.Check(true, 1) {
		t.Error("gate did not fire again after Reset")
	}
}
