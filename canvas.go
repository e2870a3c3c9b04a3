package diagram

import "math"

// TextAlign anchors a text label relative to its position.
type TextAlign uint8

const (
	AlignTopLeft TextAlign = iota
	AlignTopCenter
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomCenter
)

// Canvas is the drawing surface the diagram renders onto. All coordinates are
// screen pixels. Implementations live outside this package (ebitencanvas,
// ggcanvas); tests use a recording canvas.
type Canvas interface {
	StrokeLine(from, to Vec2, width float64, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	FillPolygon(pts []Vec2, c Color)
	DrawText(s string, pos Vec2, align TextAlign, c Color)
}

// StrokePolyline strokes consecutive segments through pts.
func StrokePolyline(c Canvas, pts []Vec2, width float64, col Color) {
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1], pts[i], width, col)
	}
}

// StrokeDashed strokes the segment from→to as dashes of length dash separated
// by gaps of length gap. A non-positive dash or gap draws a solid line.
func StrokeDashed(c Canvas, from, to Vec2, dash, gap, width float64, col Color) {
	if dash <= 0 || gap <= 0 {
		c.StrokeLine(from, to, width, col)
		return
	}
	total := from.DistanceTo(to)
	if total == 0 {
		return
	}
	dir := to.Sub(from).Div(total)
	for s := 0.0; s < total; s += dash + gap {
		e := math.Min(s+dash, total)
		c.StrokeLine(from.Add(dir.Scale(s)), from.Add(dir.Scale(e)), width, col)
	}
}

// StrokeDashedPolyline strokes consecutive dashed segments through pts. The
// dash pattern restarts at every vertex.
func StrokeDashedPolyline(c Canvas, pts []Vec2, dash, gap, width float64, col Color) {
	for i := 1; i < len(pts); i++ {
		StrokeDashed(c, pts[i-1], pts[i], dash, gap, width, col)
	}
}

// StrokeParametric strokes the curve fn(t) for t from t0 to t1 as a polyline
// of steps segments. fn returns screen coordinates. A non-positive steps uses
// 100. Points that are not finite break the polyline, so functions with poles
// draw as separate pieces.
func StrokeParametric(c Canvas, fn func(t float64) Vec2, t0, t1 float64, steps int, width float64, col Color) {
	if steps <= 0 {
		steps = curveSegments
	}
	prev := fn(t0)
	for i := 1; i <= steps; i++ {
		p := fn(Lerp(t0, t1, float64(i)/float64(steps)))
		if finite(prev) && finite(p) {
			c.StrokeLine(prev, p, width, col)
		}
		prev = p
	}
}

// PlotParametric is StrokeParametric for a curve in world coordinates, mapped
// to the screen through cs.
func PlotParametric(c Canvas, cs *CoordinateSystem, fn func(t float64) Vec2, t0, t1 float64, steps int, width float64, col Color) {
	StrokeParametric(c, func(t float64) Vec2 {
		w := fn(t)
		return cs.WorldToScreen(w.X, w.Y)
	}, t0, t1, steps, width, col)
}

// StrokeFunction plots the graph y = fn(x) for world x from x0 to x1.
func StrokeFunction(c Canvas, cs *CoordinateSystem, fn func(x float64) float64, x0, x1 float64, steps int, width float64, col Color) {
	PlotParametric(c, cs, func(x float64) Vec2 { return Vec2{x, fn(x)} }, x0, x1, steps, width, col)
}

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
