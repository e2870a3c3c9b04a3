package diagram

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDuration is the time in seconds for one pass from t=0 to t=1.
const DefaultDuration = 3.0

// Playback advances a curve parameter t from 0 to 1 over a fixed duration.
// Time is mapped through an easing curve by a gween tween and, when an
// ArcLengthTable is attached, through arc length so the point moves at
// constant speed along the curve.
//
// There is no timer: the host calls Update(dt) once per frame.
type Playback struct {
	// Loop restarts at t=0 after passing t=1. Without Loop playback stops at
	// t=1.
	Loop bool

	tween    *gween.Tween
	easeFn   ease.TweenFunc
	easing   string
	duration float64
	elapsed  float64
	playing  bool
	t        float64
	arc      *ArcLengthTable
}

// NewPlayback returns a looping, linear playback lasting duration seconds.
// A non-positive duration uses DefaultDuration.
func NewPlayback(duration float64) *Playback {
	p := &Playback{Loop: true, easing: "linear", easeFn: ease.Linear}
	p.SetDuration(duration)
	return p
}

func (p *Playback) rebuild() {
	p.tween = gween.New(0, 1, float32(p.duration), p.easeFn)
	p.tween.Set(float32(p.elapsed))
}

// SetDuration changes the pass duration. The current t is kept.
func (p *Playback) SetDuration(seconds float64) {
	if seconds <= 0 {
		seconds = DefaultDuration
	}
	frac := 0.0
	if p.duration > 0 {
		frac = p.elapsed / p.duration
	}
	p.duration = seconds
	p.elapsed = frac * seconds
	p.rebuild()
}

// Duration returns the pass duration in seconds.
func (p *Playback) Duration() float64 { return p.duration }

// SetEasing selects a named easing (see EasingNames). Unknown names select
// linear. The current t is kept.
func (p *Playback) SetEasing(name string) {
	if !HasEasing(name) {
		name = "linear"
	}
	p.easing = name
	p.easeFn = TweenFunc(name)
	p.rebuild()
	p.Seek(p.t)
}

// Easing returns the selected easing name.
func (p *Playback) Easing() string { return p.easing }

// SetArcLength attaches a table for constant-speed traversal. nil restores
// uniform parameter speed. The current t is kept.
func (p *Playback) SetArcLength(tbl *ArcLengthTable) {
	p.arc = tbl
	p.Seek(p.t)
}

// Play starts or resumes playback.
func (p *Playback) Play() { p.playing = true }

// Pause stops playback, keeping t.
func (p *Playback) Pause() { p.playing = false }

// Playing reports whether playback is running.
func (p *Playback) Playing() bool { return p.playing }

// T returns the current parameter.
func (p *Playback) T() float64 { return p.t }

// Update advances playback by dt seconds and returns the new t and whether it
// changed. A paused playback returns (T(), false).
func (p *Playback) Update(dt float64) (float64, bool) {
	if !p.playing || dt <= 0 {
		return p.t, false
	}
	p.elapsed += dt
	if p.elapsed > p.duration {
		if p.Loop {
			p.elapsed = 0
		} else {
			p.elapsed = p.duration
			p.playing = false
		}
	}
	v, _ := p.tween.Set(float32(p.elapsed))
	p.t = p.mapT(float64(v))
	return p.t, true
}

// mapT turns eased progress into a curve parameter.
func (p *Playback) mapT(v float64) float64 {
	v = Clamp(v, 0, 1)
	if p.arc != nil {
		return p.arc.TAtFraction(v)
	}
	return v
}

// Seek moves playback so that T() == t, clamped to [0, 1]. Subsequent updates
// continue from there. For easings that are not monotonic the time chosen is
// one of several that produce t.
func (p *Playback) Seek(t float64) {
	t = Clamp(t, 0, 1)
	frac := t
	if p.arc != nil {
		if total := p.arc.Length(); total > 0 {
			frac = p.arc.LengthAtT(t) / total
		}
	}
	p.elapsed = invertEase(fromTween(p.easeFn), frac) * p.duration
	p.tween.Set(float32(p.elapsed))
	p.t = t
}

// Reset pauses and returns to t=0.
func (p *Playback) Reset() {
	p.playing = false
	p.elapsed = 0
	p.tween.Reset()
	p.t = 0
}

// invertEase finds s in [0, 1] with fn(s) ≈ v by bisection. fn(0)=0 and
// fn(1)=1 for every registered easing, so a root exists for v in [0, 1].
func invertEase(fn EaseFunc, v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if fn(mid) < v {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
