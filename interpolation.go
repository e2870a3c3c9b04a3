package diagram

import "math"

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where v lies between a and b as a fraction. The result is
// not clamped. If a == b it returns 0.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// MapRange maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return Lerp(outMin, outMax, InverseLerp(inMin, inMax, v))
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Smoothstep is cubic Hermite interpolation of x between edge0 and edge1. The
// result is 0 at or below edge0 and 1 at or above edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Smootherstep is the quintic variant of Smoothstep with zero first and
// second derivatives at both edges.
func Smootherstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}
