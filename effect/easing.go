// Package effect implements the animation side of the section editor:
// per-trigger effect definitions with symmetric from/to keyframe sets,
// atomic preset application, per-child override resolution, and stagger
// delay sequencing. The package computes effective configurations; the
// preview collaborator owns actual playback.
package effect

import "math"

// EasingFunc maps time progress (0-1) to value progress (0-1).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseOutCubic - smooth deceleration (good for UI)
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseOutBack - slight overshoot then settle (bouncy feel)
	EaseOutBack EasingFunc = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}

	// EaseOutElastic - elastic wobble effect
	EaseOutElastic EasingFunc = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		c4 := (2 * math.Pi) / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	}

	// EaseOutBounce - bouncing ball effect
	EaseOutBounce EasingFunc = func(t float64) float64 {
		n1 := 7.5625
		d1 := 2.75
		if t < 1/d1 {
			return n1 * t * t
		} else if t < 2/d1 {
			t -= 1.5 / d1
			return n1*t*t + 0.75
		} else if t < 2.5/d1 {
			t -= 2.25 / d1
			return n1*t*t + 0.9375
		} else {
			t -= 2.625 / d1
			return n1*t*t + 0.984375
		}
	}
)

// easingByName maps the easing keywords stored on definitions to curves.
var easingByName = map[string]EasingFunc{
	"linear":            EaseLinear,
	"ease-in":           EaseInQuad,
	"ease-out":          EaseOutQuad,
	"ease-in-out":       EaseInOutQuad,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
	"ease-out-back":     EaseOutBack,
	"ease-out-elastic":  EaseOutElastic,
	"ease-out-bounce":   EaseOutBounce,
}

// EasingByName returns the curve for an easing keyword. Unknown keywords
// fall back to EaseLinear so playback never stalls on a bad document.
func EasingByName(name string) EasingFunc {
	if fn, ok := easingByName[name]; ok {
		return fn
	}
	return EaseLinear
}

// KnownEasing reports whether name is a recognized easing keyword.
func KnownEasing(name string) bool {
	_, ok := easingByName[name]
	return ok
}
