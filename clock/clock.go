// Package clock turns a monotonically increasing timestamp into per-tick deltas.
package clock

import "math"

// Clock converts timestamps (milliseconds) into elapsed-time deltas.
// The zero value is ready to use.
type Clock struct {
	last    float64
	started bool
}

// Tick stores ts as the new reference and returns the milliseconds elapsed
// since the previous call. The first call returns 0. A timestamp that goes
// backwards yields 0, and NaN or infinite timestamps are treated as 0.
func (c *Clock) Tick(ts float64) float64 {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		ts = 0
	}

	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}

	elapsed := ts - c.last
	c.last = ts
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Reset forgets the reference timestamp so the next Tick returns 0.
func (c *Clock) Reset() {
	c.last = 0
	c.started = false
}

// TickSource produces timestamps from a fixed update rate. Ebitengine stops
// calling Update while the window is suspended, so time derived from counted
// updates pauses with it instead of jumping forward on resume.
type TickSource struct {
	ticks int64
}

// Advance counts one update and returns the timestamp in milliseconds.
// A non-positive tps counts nothing and reports 0.
func (s *TickSource) Advance(tps int) float64 {
	if tps > 0 {
		s.ticks++
	}
	return s.Now(tps)
}

// Now returns the current timestamp in milliseconds without advancing.
func (s *TickSource) Now(tps int) float64 {
	if tps <= 0 {
		return 0
	}
	return float64(s.ticks) * 1000 / float64(tps)
}
