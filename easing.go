package diagram

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps normalized progress in [0, 1] to eased progress. Most curves
// stay within [0, 1]; elastic and back curves overshoot.
type EaseFunc func(t float64) float64

// easings maps the diagram easing names onto gween's tween functions.
var easings = map[string]ease.TweenFunc{
	"linear":           ease.Linear,
	"easeInQuad":       ease.InQuad,
	"easeOutQuad":      ease.OutQuad,
	"easeInOutQuad":    ease.InOutQuad,
	"easeInCubic":      ease.InCubic,
	"easeOutCubic":     ease.OutCubic,
	"easeInOutCubic":   ease.InOutCubic,
	"easeInQuart":      ease.InQuart,
	"easeOutQuart":     ease.OutQuart,
	"easeInOutQuart":   ease.InOutQuart,
	"easeInQuint":      ease.InQuint,
	"easeOutQuint":     ease.OutQuint,
	"easeInOutQuint":   ease.InOutQuint,
	"easeInSine":       ease.InSine,
	"easeOutSine":      ease.OutSine,
	"easeInOutSine":    ease.InOutSine,
	"easeInExpo":       ease.InExpo,
	"easeOutExpo":      ease.OutExpo,
	"easeInOutExpo":    ease.InOutExpo,
	"easeInCirc":       ease.InCirc,
	"easeOutCirc":      ease.OutCirc,
	"easeInOutCirc":    ease.InOutCirc,
	"easeInElastic":    ease.InElastic,
	"easeOutElastic":   ease.OutElastic,
	"easeInOutElastic": ease.InOutElastic,
	"easeInBack":       ease.InBack,
	"easeOutBack":      ease.OutBack,
	"easeInOutBack":    ease.InOutBack,
	"easeInBounce":     ease.InBounce,
	"easeOutBounce":    ease.OutBounce,
	"easeInOutBounce":  ease.InOutBounce,
}

// TweenFunc returns the gween tween function registered under name, or
// ease.Linear if the name is unknown.
func TweenFunc(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

// Easing returns the easing curve registered under name. Unknown names fall
// back to linear.
func Easing(name string) EaseFunc {
	return fromTween(TweenFunc(name))
}

// HasEasing reports whether name is a registered easing.
func HasEasing(name string) bool {
	_, ok := easings[name]
	return ok
}

// EasingNames returns the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fromTween(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// CubicBezierEasing returns a CSS-compatible cubic-bezier(x1, y1, x2, y2)
// easing. The curve runs from (0,0) to (1,1); x(s) is inverted with a few
// Newton steps and y(s) is returned.
func CubicBezierEasing(x1, y1, x2, y2 float64) EaseFunc {
	const (
		epsilon    = 1e-4
		iterations = 8
	)
	bx := func(s float64) float64 { return cubicUnit(s, x1, x2) }
	by := func(s float64) float64 { return cubicUnit(s, y1, y2) }
	dbx := func(s float64) float64 {
		u := 1 - s
		return 3*u*u*x1 + 6*u*s*(x2-x1) + 3*s*s*(1-x2)
	}
	return func(t float64) float64 {
		s := t
		for i := 0; i < iterations; i++ {
			dx := bx(s) - t
			if math.Abs(dx) < epsilon {
				break
			}
			d := dbx(s)
			if math.Abs(d) < epsilon {
				break
			}
			s -= dx / d
		}
		return by(s)
	}
}

// cubicUnit evaluates one coordinate of a cubic with endpoints 0 and 1.
func cubicUnit(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*p1*s*u*u + 3*p2*s*s*u + s*s*s
}
