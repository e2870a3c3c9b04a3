package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaybackDefaults(t *testing.T) {
	p := NewPlayback(0)
	assert.Equal(t, DefaultDuration, p.Duration())
	assert.Equal(t, "linear", p.Easing())
	assert.True(t, p.Loop)
	assert.False(t, p.Playing())
	assert.Equal(t, 0.0, p.T())
}

func TestPlaybackPausedDoesNotAdvance(t *testing.T) {
	p := NewPlayback(1)
	tv, changed := p.Update(0.5)
	assert.False(t, changed)
	assert.Equal(t, 0.0, tv)

	p.Play()
	_, changed = p.Update(0)
	assert.False(t, changed, "zero dt is not a change")
}

func TestPlaybackLinearAdvance(t *testing.T) {
	p := NewPlayback(1)
	p.Play()
	tv, changed := p.Update(0.25)
	assert.True(t, changed)
	assert.InDelta(t, 0.25, tv, 1e-6)
	tv, _ = p.Update(0.5)
	assert.InDelta(t, 0.75, tv, 1e-6)
}

func TestPlaybackLoopWrapsToZero(t *testing.T) {
	p := NewPlayback(1)
	p.Play()
	p.Update(1)
	assert.InDelta(t, 1, p.T(), 1e-6, "reaching the end exactly shows t=1")

	tv, _ := p.Update(0.25)
	assert.Equal(t, 0.0, tv, "passing the end restarts at 0")
	assert.True(t, p.Playing())
}

func TestPlaybackNoLoopStops(t *testing.T) {
	p := NewPlayback(1)
	p.Loop = false
	p.Play()
	tv, changed := p.Update(2)
	assert.True(t, changed)
	assert.InDelta(t, 1, tv, 1e-6)
	assert.False(t, p.Playing())
}

func TestPlaybackEasing(t *testing.T) {
	p := NewPlayback(1)
	p.SetEasing("easeInQuad")
	assert.Equal(t, "easeInQuad", p.Easing())
	p.Play()
	tv, _ := p.Update(0.5)
	assert.InDelta(t, 0.25, tv, 1e-6)

	p.SetEasing("nope")
	assert.Equal(t, "linear", p.Easing())
}

func TestPlaybackSeekInvertsEasing(t *testing.T) {
	p := NewPlayback(1)
	p.SetEasing("easeInQuad")
	p.Seek(0.25)
	assert.Equal(t, 0.25, p.T())

	// 0.25 = s² at s = 0.5; continuing 0.1s lands on 0.6² = 0.36.
	p.Play()
	tv, _ := p.Update(0.1)
	assert.InDelta(t, 0.36, tv, 1e-5)
}

func TestPlaybackSeekClamps(t *testing.T) {
	p := NewPlayback(1)
	p.Seek(3)
	assert.Equal(t, 1.0, p.T())
	p.Seek(-1)
	assert.Equal(t, 0.0, p.T())
}

func TestPlaybackSetDurationKeepsProgress(t *testing.T) {
	p := NewPlayback(1)
	p.Play()
	p.Update(0.5)
	p.SetDuration(2)
	assert.Equal(t, 2.0, p.Duration())
	assert.InDelta(t, 0.5, p.T(), 1e-6)

	tv, _ := p.Update(0.5)
	assert.InDelta(t, 0.75, tv, 1e-6)
}

func TestPlaybackConstantSpeed(t *testing.T) {
	pts := []Vec2{{0, 0}, {4.5, 0}, {5.5, 0}, {10, 0}}
	tbl := NewArcLengthTable(pts, 400)

	p := NewPlayback(1)
	p.SetArcLength(tbl)
	p.Play()
	tv, _ := p.Update(0.25)
	assert.InDelta(t, tbl.TAtFraction(0.25), tv, 1e-5)
	assert.InDelta(t, 2.5, BezierPoint(pts, tv).X, 1e-3)

	// Seek round-trips through the table.
	p.Seek(0.3)
	assert.Equal(t, 0.3, p.T())
}

func TestPlaybackReset(t *testing.T) {
	p := NewPlayback(1)
	p.Play()
	p.Update(0.4)
	p.Reset()
	assert.False(t, p.Playing())
	assert.Equal(t, 0.0, p.T())

	p.Play()
	tv, _ := p.Update(0.1)
	assert.InDelta(t, 0.1, tv, 1e-6)
}

func TestInvertEase(t *testing.T) {
	assert.Equal(t, 0.0, invertEase(Easing("easeInQuad"), -1))
	assert.Equal(t, 1.0, invertEase(Easing("easeInQuad"), 2))
	assert.InDelta(t, 0.5, invertEase(Easing("easeInQuad"), 0.25), 1e-6)
	assert.InDelta(t, 0.3, invertEase(Easing("linear"), 0.3), 1e-6)
}

func TestPlaybackSetEasingMidPass(t *testing.T) {
	p := NewPlayback(1)
	p.Play()
	p.Update(0.5)
	p.SetEasing("easeInQuad")
	assert.InDelta(t, 0.5, p.T(), 1e-6, "switching easing keeps t")

	// t=0.5 is s=√0.5 on easeInQuad; 0.1s later t=(√0.5+0.1)².
	tv, _ := p.Update(0.1)
	s := 0.7071067811865476 + 0.1
	assert.InDelta(t, s*s, tv, 1e-5)
}
