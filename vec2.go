package diagram

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for points, offsets, and directions throughout the
// API. It carries no unit: the same type holds world-space and screen-space
// coordinates and the caller tracks which space a value is in.
type Vec2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns a vector of the given length pointing at angle radians.
func VecFromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos * length, Y: sin * length}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%.2f, %.2f)", v.X, v.Y)
}

// Set overwrites v in place. It is the only mutating method on Vec2.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both components by s. Dividing by zero yields the zero vector.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// if v has zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Div(l)
}

// Angle returns the angle of v in radians, measured from the positive X axis.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Perp returns v rotated by +90°.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Lerp interpolates from v toward o. t is not clamped.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// DistanceTo returns the euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Len()
}

// AngleTo returns the angle of the direction from v to o.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// Reflect reflects v across the line with the given unit normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	d := v.Dot(normal) * 2
	return v.Sub(normal.Scale(d))
}

// --- Free helpers ---

// Distance returns the distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Centroid returns the average of pts, or the zero vector for an empty slice.
func Centroid(pts []Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}

// BoundingBox returns the axis-aligned bounds of pts. An empty slice yields the
// zero Rect.
func BoundingBox(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PointInPolygon reports whether p lies inside polygon using ray casting.
// The polygon may be concave and either winding.
func PointInPolygon(p Vec2, polygon []Vec2) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// ClosestPointOnSegment projects p onto the segment from a to b and returns the
// projected point and its parameter in [0, 1]. A zero-length segment returns a
// with t = 0.
func ClosestPointOnSegment(p, a, b Vec2) (Vec2, float64) {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return a, 0
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Scale(t)), t
}
