// Package progression drives the establishing-shot zoom: progress over time,
// the camera pose derived from it, and the parallax sway of the scenery.
package progression

import (
	"math"

	"github.com/automoto/soliman/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Settings tunes the zoom. Durations are in milliseconds.
type Settings struct {
	DurationMs float64
	Easing     ease.TweenFunc

	Idle   Pose
	Target Pose

	// Camera parallax in world units at full pointer deflection.
	ParallaxX, ParallaxY float64

	// Scenery sway in world units per unit of depth at full deflection.
	SwayX, SwayY float64

	// Wind is a slow oscillation added to the sway independent of the
	// pointer. Zero amplitude disables it.
	WindAmplitude float64
	WindPeriodMs  float64
}

// Frame is the output of one Update.
type Frame struct {
	Progress float64
	Camera   Pose
	// Sway is the offset for scenery at depth 1; callers scale it by each
	// plane's depth.
	Sway Offset
}

// Engine owns the started flag, progress and the last pointer position.
type Engine struct {
	settings Settings
	tween    *gween.Tween

	started   bool
	elapsedMs float64
	progress  float64
	mouseX    float64
	mouseY    float64
}

// NewEngine returns an idle engine. A non-positive duration completes the
// zoom on the first started update.
func NewEngine(s Settings) *Engine {
	if s.Easing == nil {
		s.Easing = ease.InOutCubic
	}
	if s.DurationMs < 0 || math.IsNaN(s.DurationMs) {
		s.DurationMs = 0
	}
	return &Engine{
		settings: s,
		tween:    gween.New(0, 1, float32(s.DurationMs/1000), s.Easing),
	}
}

// Start begins the zoom. Calling it again while started does not rewind.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	e.elapsedMs = 0
	e.progress = 0
	e.tween.Reset()
}

// Reset returns the engine to its idle state.
func (e *Engine) Reset() {
	e.started = false
	e.elapsedMs = 0
	e.progress = 0
	e.tween.Reset()
}

// Started reports whether Start has been called since the last Reset.
func (e *Engine) Started() bool { return e.started }

// Progress is the zoom completion in [0, 1].
func (e *Engine) Progress() float64 { return e.progress }

// ElapsedMs is the time integrated since Start.
func (e *Engine) ElapsedMs() float64 { return e.elapsedMs }

// Mouse returns the last normalised pointer position.
func (e *Engine) Mouse() (x, y float64) { return e.mouseX, e.mouseY }

// Settings returns the engine's tuning.
func (e *Engine) Settings() Settings { return e.settings }

// Update integrates elapsedMs while started and returns the camera pose and
// scenery sway for this tick. ts only drives the wind oscillation.
func (e *Engine) Update(ts, elapsedMs, mouseX, mouseY float64) Frame {
	e.mouseX = gamemath.ClampAxis(mouseX)
	e.mouseY = gamemath.ClampAxis(mouseY)

	if e.started {
		e.elapsedMs += gamemath.SanitizeElapsed(elapsedMs)
		e.progress = math.Max(e.progress, e.progressAt(e.elapsedMs))
	}

	return Frame{
		Progress: e.progress,
		Camera:   e.camera(),
		Sway:     e.sway(ts),
	}
}

func (e *Engine) progressAt(elapsedMs float64) float64 {
	if elapsedMs >= e.settings.DurationMs {
		return 1
	}
	current, finished := e.tween.Set(float32(elapsedMs / 1000))
	if finished {
		return 1
	}
	p := gamemath.Clamp01(float64(current))
	// The float32 tween can round up to 1 just before the duration; only the
	// duration itself completes the zoom.
	if p >= 1 {
		p = math.Nextafter(1, 0)
	}
	return p
}

// weight is the share of pointer-driven motion left at the current progress.
func (e *Engine) weight() float64 {
	return 1 - e.progress
}

func (e *Engine) camera() Pose {
	pose := Blend(e.settings.Idle, e.settings.Target, e.progress)
	w := e.weight()
	pose.X += e.mouseX * e.settings.ParallaxX * w
	pose.Y += e.mouseY * e.settings.ParallaxY * w
	return pose
}

func (e *Engine) sway(ts float64) Offset {
	w := e.weight()
	off := Offset{
		X: e.mouseX * e.settings.SwayX * w,
		Y: e.mouseY * e.settings.SwayY * w,
	}
	if e.settings.WindAmplitude != 0 && e.settings.WindPeriodMs > 0 {
		ts = gamemath.SanitizeElapsed(ts)
		off.X += e.settings.WindAmplitude * math.Sin(2*math.Pi*ts/e.settings.WindPeriodMs)
	}
	return off
}
