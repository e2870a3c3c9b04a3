package diagram

import "math"

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

// recordingCanvas counts draw calls by kind and keeps the text it was asked to
// draw.
type recordingCanvas struct {
	lines, fills, strokes, polys int
	texts                        []string
	fillRadii                    []float64
	segs                         []Segment
}

func (c *recordingCanvas) StrokeLine(from, to Vec2, _ float64, _ Color) {
	c.lines++
	c.segs = append(c.segs, Segment{from, to})
}

func (c *recordingCanvas) FillCircle(_ Vec2, r float64, _ Color) {
	c.fills++
	c.fillRadii = append(c.fillRadii, r)
}

func (c *recordingCanvas) StrokeCircle(_ Vec2, _, _ float64, _ Color) { c.strokes++ }

func (c *recordingCanvas) FillPolygon(_ []Vec2, _ Color) { c.polys++ }

func (c *recordingCanvas) DrawText(s string, _ Vec2, _ TextAlign, _ Color) {
	c.texts = append(c.texts, s)
}
