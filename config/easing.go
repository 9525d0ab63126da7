package config

import (
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inoutquad":  ease.InOutQuad,
	"inoutcubic": ease.InOutCubic,
	"outcubic":   ease.OutCubic,
	"outquart":   ease.OutQuart,
	"inoutsine":  ease.InOutSine,
	"outsine":    ease.OutSine,
}

// EasingFunc looks up a named easing curve, case-insensitively. Only strictly
// increasing curves are listed so progress never overshoots or backs up.
func EasingFunc(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(name)]
	return fn, ok
}
