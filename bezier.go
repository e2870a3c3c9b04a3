package diagram

import "math"

// Bézier curves are represented implicitly by their control polygon: a slice
// of at least one point, degree len(points)-1. None of the functions below
// retain or modify the slice. Passing an empty slice is a caller error.

const (
	// DefaultSteps is the sample count used when a non-positive count is passed
	// to BezierArcLength, FindClosestT or SampleBezier.
	DefaultSteps = 100

	// closestRefineSamples is the number of refinement samples taken on each
	// side of the coarse optimum in FindClosestT.
	closestRefineSamples = 20
)

// CurveSample is a point on a curve together with its parameter.
type CurveSample struct {
	Point Vec2
	T     float64
}

// Closest is the result of a nearest-point search on a curve.
type Closest struct {
	T        float64
	Point    Vec2
	Distance float64
}

// Binomial returns the binomial coefficient C(n, k), computed iteratively.
// It returns 0 when k < 0 or k > n.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-i+1) / float64(i)
	}
	return result
}

// BezierPoint evaluates the curve at t in Bernstein form:
//
//	B(t) = Σ C(n,i) (1-t)^(n-i) t^i P_i
func BezierPoint(points []Vec2, t float64) Vec2 {
	n := len(points) - 1
	var x, y float64
	for i, p := range points {
		b := Binomial(n, i) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		x += b * p.X
		y += b * p.Y
	}
	return Vec2{x, y}
}

// DeCasteljau evaluates the curve at t by repeated linear interpolation of the
// control polygon. It agrees with BezierPoint up to rounding and is the more
// stable of the two near the ends of the parameter range.
func DeCasteljau(points []Vec2, t float64) Vec2 {
	level := append([]Vec2(nil), points...)
	for n := len(level) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			level[i] = level[i].Lerp(level[i+1], t)
		}
	}
	return level[0]
}

// DeCasteljauLevels returns every level of the de Casteljau reduction at t.
// Level 0 is a copy of points; each following level has one point fewer and
// the last level holds the single curve point. The result has len(points)
// levels.
func DeCasteljauLevels(points []Vec2, t float64) [][]Vec2 {
	levels := make([][]Vec2, 0, len(points))
	current := append([]Vec2(nil), points...)
	levels = append(levels, current)
	for len(current) > 1 {
		next := make([]Vec2, len(current)-1)
		for i := range next {
			next[i] = current[i].Lerp(current[i+1], t)
		}
		levels = append(levels, next)
		current = next
	}
	return levels
}

// SplitBezier splits the curve at t into two curves of the same degree that
// together trace the input curve.
func SplitBezier(points []Vec2, t float64) (left, right []Vec2) {
	levels := DeCasteljauLevels(points, t)
	n := len(levels)
	left = make([]Vec2, n)
	right = make([]Vec2, n)
	for i, level := range levels {
		left[i] = level[0]
		right[n-1-i] = level[len(level)-1]
	}
	return left, right
}

// Hodograph returns the control polygon of the derivative curve,
// n*(P[i+1]-P[i]). A single point has an empty hodograph.
func Hodograph(points []Vec2) []Vec2 {
	n := len(points) - 1
	if n < 1 {
		return nil
	}
	d := make([]Vec2, n)
	for i := 0; i < n; i++ {
		d[i] = points[i+1].Sub(points[i]).Scale(float64(n))
	}
	return d
}

// BezierDerivative returns the first derivative of the curve at t. The
// derivative of a single point is the zero vector.
func BezierDerivative(points []Vec2, t float64) Vec2 {
	d := Hodograph(points)
	if len(d) == 0 {
		return Vec2{}
	}
	return BezierPoint(d, t)
}

// BezierTangent returns the unit tangent at t, or the zero vector where the
// derivative vanishes.
func BezierTangent(points []Vec2, t float64) Vec2 {
	return BezierDerivative(points, t).Normalize()
}

// BezierNormal returns the unit normal at t: the derivative rotated by -90° in
// screen terms, i.e. (-d.Y, d.X)/|d|. Where the derivative vanishes it returns
// (0, 1).
func BezierNormal(points []Vec2, t float64) Vec2 {
	d := BezierDerivative(points, t)
	l := d.Len()
	if l == 0 {
		return Vec2{0, 1}
	}
	return Vec2{-d.Y / l, d.X / l}
}

// BezierArcLength approximates the curve length by summing the segments of a
// polyline through steps+1 uniformly spaced samples. The estimate grows with
// steps and converges to the true length.
func BezierArcLength(points []Vec2, steps int) float64 {
	if steps <= 0 {
		steps = DefaultSteps
	}
	var length float64
	prev := BezierPoint(points, 0)
	for i := 1; i <= steps; i++ {
		p := BezierPoint(points, float64(i)/float64(steps))
		length += p.DistanceTo(prev)
		prev = p
	}
	return length
}

// FindClosestT searches for the curve parameter nearest to target. A coarse
// scan over samples+1 uniform parameters is followed by a finer scan of
// 41 parameters within ±1/samples of the coarse optimum. The result is an
// approximation: on curves with several nearly equal local minima the winner
// depends on the sample density.
func FindClosestT(points []Vec2, target Vec2, samples int) Closest {
	if samples <= 0 {
		samples = DefaultSteps
	}
	best := Closest{Distance: math.Inf(1)}
	try := func(t float64) {
		p := BezierPoint(points, t)
		if d := p.DistanceTo(target); d < best.Distance {
			best = Closest{T: t, Point: p, Distance: d}
		}
	}

	for i := 0; i <= samples; i++ {
		try(float64(i) / float64(samples))
	}

	center := best.T
	step := 1 / float64(samples) / closestRefineSamples
	for i := -closestRefineSamples; i <= closestRefineSamples; i++ {
		try(Clamp(center+float64(i)*step, 0, 1))
	}
	return best
}

// RefineClosestT improves a FindClosestT result with at most iterations Newton
// steps on f(t) = (B(t)-target)·B'(t). A step is only accepted when it brings
// the curve point closer to target, so the result is never worse than c.
func RefineClosestT(points []Vec2, target Vec2, c Closest, iterations int) Closest {
	d1 := Hodograph(points)
	if len(d1) == 0 {
		return c
	}
	d2 := Hodograph(d1)

	best := c
	t := c.T
	for i := 0; i < iterations; i++ {
		diff := BezierPoint(points, t).Sub(target)
		first := BezierPoint(d1, t)
		var second Vec2
		if len(d2) > 0 {
			second = BezierPoint(d2, t)
		}
		num := diff.Dot(first)
		den := first.Dot(first) + diff.Dot(second)
		if den == 0 {
			break
		}
		next := Clamp(t-num/den, 0, 1)
		p := BezierPoint(points, next)
		d := p.DistanceTo(target)
		if d >= best.Distance {
			break
		}
		best = Closest{T: next, Point: p, Distance: d}
		if math.Abs(next-t) < 1e-12 {
			break
		}
		t = next
	}
	return best
}

// SampleBezier evaluates the curve at samples+1 uniformly spaced parameters,
// including both endpoints.
func SampleBezier(points []Vec2, samples int) []CurveSample {
	if samples <= 0 {
		samples = DefaultSteps
	}
	out := make([]CurveSample, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		out[i] = CurveSample{Point: BezierPoint(points, t), T: t}
	}
	return out
}
