package timing

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/tanema/gween/ease"
)

// Easing is a unit easing curve together with its CSS timing function.
//
// The zero value is linear.
type Easing struct {
	fn  func(float64) float64
	css string
}

// NewEasing wraps fn. css is the equivalent CSS timing function, or "" when
// there is none; declarative backends then fall back to sampling.
func NewEasing(fn func(float64) float64, css string) Easing {
	return Easing{fn: fn, css: css}
}

// FromTween adapts a gween easing function.
func FromTween(fn ease.TweenFunc, css string) Easing {
	return Easing{
		fn: func(t float64) float64 {
			return float64(fn(float32(t), 0, 1, 1))
		},
		css: css,
	}
}

// Apply evaluates the curve at t. Inputs are clamped to [0,1] and the
// endpoints are exact: Apply(0) == 0 and Apply(1) == 1.
func (e Easing) Apply(t float64) float64 {
	switch {
	case t <= 0 || math.IsNaN(t):
		return 0
	case t >= 1:
		return 1
	case e.fn == nil:
		return t
	}
	return e.fn(t)
}

// CSS returns the CSS timing function, or "" if the curve has none.
func (e Easing) CSS() string {
	if e.fn == nil && e.css == "" {
		return "linear"
	}
	return e.css
}

// CubicBezier returns the CSS cubic-bezier(x1, y1, x2, y2) timing curve.
// x1 and x2 are clamped to [0,1] as CSS requires.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1, x2 = clampUnit(x1), clampUnit(x2)
	return Easing{
		fn:  cubicBezier(x1, y1, x2, y2),
		css: fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", num(x1), num(y1), num(x2), num(y2)),
	}
}

func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-9 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-9 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback for flat derivatives.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 40 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-9 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Standard curves.
var (
	Linear    = Easing{css: "linear"}
	Ease      = namedBezier("ease", 0.25, 0.1, 0.25, 1)
	EaseIn    = namedBezier("ease-in", 0.42, 0, 1, 1)
	EaseOut   = namedBezier("ease-out", 0, 0, 0.58, 1)
	EaseInOut = namedBezier("ease-in-out", 0.42, 0, 0.58, 1)

	InQuad     = FromTween(ease.InQuad, "cubic-bezier(0.11, 0, 0.5, 0)")
	OutQuad    = FromTween(ease.OutQuad, "cubic-bezier(0.5, 1, 0.89, 1)")
	InOutQuad  = FromTween(ease.InOutQuad, "cubic-bezier(0.45, 0, 0.55, 1)")
	InCubic    = FromTween(ease.InCubic, "cubic-bezier(0.32, 0, 0.67, 0)")
	OutCubic   = FromTween(ease.OutCubic, "cubic-bezier(0.33, 1, 0.68, 1)")
	InOutCubic = FromTween(ease.InOutCubic, "cubic-bezier(0.65, 0, 0.35, 1)")
	InSine     = FromTween(ease.InSine, "cubic-bezier(0.12, 0, 0.39, 0)")
	OutSine    = FromTween(ease.OutSine, "cubic-bezier(0.61, 1, 0.88, 1)")
	InOutSine  = FromTween(ease.InOutSine, "cubic-bezier(0.37, 0, 0.63, 1)")
	OutBack    = FromTween(ease.OutBack, "cubic-bezier(0.34, 1.56, 0.64, 1)")
	OutBounce  = FromTween(ease.OutBounce, "")
)

func namedBezier(name string, x1, y1, x2, y2 float64) Easing {
	e := CubicBezier(x1, y1, x2, y2)
	e.css = name
	return e
}

var (
	namedMu sync.RWMutex
	named   = map[string]Easing{
		"linear":       Linear,
		"ease":         Ease,
		"ease-in":      EaseIn,
		"ease-out":     EaseOut,
		"ease-in-out":  EaseInOut,
		"in-quad":      InQuad,
		"out-quad":     OutQuad,
		"in-out-quad":  InOutQuad,
		"in-cubic":     InCubic,
		"out-cubic":    OutCubic,
		"in-out-cubic": InOutCubic,
		"in-sine":      InSine,
		"out-sine":     OutSine,
		"in-out-sine":  InOutSine,
		"out-back":     OutBack,
		"out-bounce":   OutBounce,
	}
)

// Lookup returns the standard curve registered under name.
func Lookup(name string) (Easing, bool) {
	namedMu.RLock()
	defer namedMu.RUnlock()
	e, ok := named[name]
	return e, ok
}

// RegisterEasing makes e available to Lookup under name.
// It panics if name is empty or already registered.
func RegisterEasing(name string, e Easing) {
	namedMu.Lock()
	defer namedMu.Unlock()
	if name == "" {
		panic("timing: RegisterEasing with empty name")
	}
	if _, dup := named[name]; dup {
		panic("timing: RegisterEasing called twice for " + name)
	}
	named[name] = e
}
