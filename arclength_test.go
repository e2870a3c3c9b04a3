package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArcLengthTableMatchesBezierArcLength(t *testing.T) {
	for _, steps := range []int{0, 10, 250} {
		tbl := NewArcLengthTable(cubic, steps)
		assert.InDelta(t, BezierArcLength(cubic, steps), tbl.Length(), 1e-9, "steps %d", steps)
	}
}

func TestArcLengthTableOnLine(t *testing.T) {
	// Uniform parameterisation: length is proportional to t.
	tbl := NewArcLengthTable(line, 10)
	assert.InDelta(t, 10, tbl.Length(), epsilon)
	assert.InDelta(t, 0.35, tbl.TAtLength(3.5), epsilon)
	assert.InDelta(t, 0.5, tbl.TAtFraction(0.5), epsilon)
	assert.InDelta(t, 7.25, tbl.LengthAtT(0.725), epsilon)
}

func TestArcLengthTableClamps(t *testing.T) {
	tbl := NewArcLengthTable(cubic, 50)
	assert.Equal(t, 0.0, tbl.TAtLength(-1))
	assert.Equal(t, 1.0, tbl.TAtLength(tbl.Length()+1))
	assert.Equal(t, 0.0, tbl.TAtFraction(-0.5))
	assert.Equal(t, 1.0, tbl.TAtFraction(2))
	assert.Equal(t, 0.0, tbl.LengthAtT(-1))
	assert.Equal(t, tbl.Length(), tbl.LengthAtT(2))
}

func TestArcLengthTableRoundTrip(t *testing.T) {
	tbl := NewArcLengthTable(cubic, 200)
	for _, u := range []float64{0.1, 0.33, 0.5, 0.8, 0.97} {
		assert.InDelta(t, u, tbl.TAtLength(tbl.LengthAtT(u)), 1e-9)
	}
}

func TestArcLengthTableConstantSpeed(t *testing.T) {
	// A cubic with clustered inner control points moves fast in the middle,
	// so equal parameter steps are not equal distance steps. Equal fractions
	// of arc length are.
	pts := []Vec2{{0, 0}, {4.5, 0}, {5.5, 0}, {10, 0}}
	tbl := NewArcLengthTable(pts, 400)
	for _, f := range []float64{0.1, 0.25, 0.5, 0.9} {
		p := BezierPoint(pts, tbl.TAtFraction(f))
		assert.InDelta(t, 10*f, p.X, 1e-3)
	}
}

func TestArcLengthTableDegenerate(t *testing.T) {
	tbl := NewArcLengthTable([]Vec2{{1, 1}, {1, 1}}, 10)
	assert.Equal(t, 0.0, tbl.Length())
	assert.Equal(t, 0.0, tbl.TAtFraction(0.5))
}
