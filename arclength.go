package diagram

import "sort"

// ArcLengthTable maps curve length to curve parameter so a point can travel
// along a curve at constant speed. It is built once from a polyline
// approximation and is immutable afterward.
type ArcLengthTable struct {
	ts      []float64
	lengths []float64 // cumulative, lengths[0] == 0
}

// NewArcLengthTable samples the curve at steps+1 uniform parameters and records
// the cumulative polyline length at each sample. A non-positive steps uses
// DefaultSteps.
func NewArcLengthTable(points []Vec2, steps int) *ArcLengthTable {
	samples := SampleBezier(points, steps)
	tbl := &ArcLengthTable{
		ts:      make([]float64, len(samples)),
		lengths: make([]float64, len(samples)),
	}
	for i, s := range samples {
		tbl.ts[i] = s.T
		if i > 0 {
			tbl.lengths[i] = tbl.lengths[i-1] + s.Point.DistanceTo(samples[i-1].Point)
		}
	}
	return tbl
}

// Length returns the total approximated length. It equals
// BezierArcLength(points, steps) for the same inputs.
func (a *ArcLengthTable) Length() float64 {
	return a.lengths[len(a.lengths)-1]
}

// TAtLength returns the parameter at which the curve has covered distance s.
// s is clamped to [0, Length()]. Between samples the parameter is
// interpolated linearly.
func (a *ArcLengthTable) TAtLength(s float64) float64 {
	total := a.Length()
	if total == 0 || s <= 0 {
		return 0
	}
	if s >= total {
		return 1
	}
	i := sort.SearchFloat64s(a.lengths, s)
	if a.lengths[i] == s {
		return a.ts[i]
	}
	// lengths[i-1] < s < lengths[i]
	f := InverseLerp(a.lengths[i-1], a.lengths[i], s)
	return Lerp(a.ts[i-1], a.ts[i], f)
}

// TAtFraction returns the parameter at fraction f of the total length.
func (a *ArcLengthTable) TAtFraction(f float64) float64 {
	return a.TAtLength(Clamp(f, 0, 1) * a.Length())
}

// LengthAtT returns the covered distance at parameter t, interpolating between
// samples.
func (a *ArcLengthTable) LengthAtT(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return a.Length()
	}
	i := sort.SearchFloat64s(a.ts, t)
	if a.ts[i] == t {
		return a.lengths[i]
	}
	f := InverseLerp(a.ts[i-1], a.ts[i], t)
	return Lerp(a.lengths[i-1], a.lengths[i], f)
}
