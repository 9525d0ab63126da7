package animations

import (
	"math"

	"github.com/automoto/soliman/shared/gamemath"
)

// Strip animates a texture laid out as FrameCount equal frames along the
// horizontal axis. Strips with FrameCount <= 1 or FPS <= 0 are static.
type Strip struct {
	ID            string
	FrameCount    int
	FPS           float64
	CurrentFrame  int
	AccumulatedMs float64
}

// NewStrip returns a strip positioned on its first frame. A frame count
// below 1 is raised to 1 and a negative fps is treated as 0.
func NewStrip(id string, frameCount int, fps float64) *Strip {
	if frameCount < 1 {
		frameCount = 1
	}
	if fps < 0 {
		fps = 0
	}
	return &Strip{
		ID:         id,
		FrameCount: frameCount,
		FPS:        fps,
	}
}

// Static reports whether the strip never advances.
func (s *Strip) Static() bool {
	return s.FrameCount <= 1 || s.FPS <= 0
}

// FrameDurationMs is the time each frame stays on screen. Static strips
// report 0.
func (s *Strip) FrameDurationMs() float64 {
	if s.Static() {
		return 0
	}
	return 1000 / s.FPS
}

// Advance accumulates elapsedMs and steps the frame once per elapsed frame
// duration, wrapping at FrameCount. It reports whether the visible frame
// changed.
func (s *Strip) Advance(elapsedMs float64) bool {
	if s.Static() {
		return false
	}

	frameDuration := s.FrameDurationMs()
	s.AccumulatedMs += gamemath.SanitizeElapsed(elapsedMs)

	// Whole loops leave the frame where it was; drop them before stepping so a
	// long pause costs at most FrameCount iterations.
	cycle := frameDuration * float64(s.FrameCount)
	if s.AccumulatedMs >= cycle {
		s.AccumulatedMs = math.Mod(s.AccumulatedMs, cycle)
	}

	before := s.CurrentFrame
	steps := 0
	for s.AccumulatedMs >= frameDuration {
		s.AccumulatedMs -= frameDuration
		steps++
	}

	s.CurrentFrame = (s.CurrentFrame + steps) % s.FrameCount
	return s.CurrentFrame != before
}

// Offset is the horizontal texture offset of the current frame in [0, 1).
func (s *Strip) Offset() float64 {
	if s.FrameCount <= 1 {
		return 0
	}
	return float64(s.CurrentFrame) / float64(s.FrameCount)
}

// Restart rewinds the strip to its first frame.
func (s *Strip) Restart() {
	s.CurrentFrame = 0
	s.AccumulatedMs = 0
}
