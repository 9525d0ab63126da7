package progression

// Gate is a one-shot latch that opens the first time the zoom completes.
type Gate struct {
	fired bool
}

// Check returns true exactly once: on the first call where started is set and
// progress has reached 1. Every other call returns false.
func (g *Gate) Check(started bool, progress float64) bool {
	if g.fired || !started || !(progress >= 1) {
		return false
	}
	g.fired = true
	return true
}

// Fired reports whether the gate has opened.
func (g *Gate) Fired() bool {
	return g.fired
}

// Reset closes the gate. Only a full session reset should call it.
func (g *Gate) Reset() {
	g.fired = false
}
