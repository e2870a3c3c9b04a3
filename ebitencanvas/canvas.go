// Package ebitencanvas draws diagrams onto Ebitengine images and runs an
// interactive diagram window.
package ebitencanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vveducation/diagram"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

// Canvas implements diagram.Canvas on an *ebiten.Image. Shapes are
// anti-aliased. Text uses the ebitenutil debug font, which is always white;
// the color argument of DrawText is ignored.
type Canvas struct {
	dst *ebiten.Image
}

// New wraps dst.
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func (c *Canvas) StrokeLine(from, to diagram.Vec2, width float64, col diagram.Color) {
	vector.StrokeLine(c.dst,
		float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		float32(width), col.RGBA(), true)
}

func (c *Canvas) FillCircle(center diagram.Vec2, radius float64, col diagram.Color) {
	vector.FillCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col.RGBA(), true)
}

func (c *Canvas) StrokeCircle(center diagram.Vec2, radius, width float64, col diagram.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), col.RGBA(), true)
}

func (c *Canvas) FillPolygon(pts []diagram.Vec2, col diagram.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	var cs ebiten.ColorScale
	cs.ScaleWithColor(col.RGBA())
	vector.FillPath(c.dst, &path, nil, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})
}

func (c *Canvas) DrawText(s string, pos diagram.Vec2, align diagram.TextAlign, _ diagram.Color) {
	x, y := textOrigin(s, pos, align)
	ebitenutil.DebugPrintAt(c.dst, s, x, y)
}

// textOrigin returns the top-left corner for s anchored at pos.
func textOrigin(s string, pos diagram.Vec2, align diagram.TextAlign) (int, int) {
	w := float64(len(s) * glyphW)
	h := float64(glyphH)
	x, y := pos.X, pos.Y
	switch align {
	case diagram.AlignTopCenter:
		x -= w / 2
	case diagram.AlignMiddleLeft:
		y -= h / 2
	case diagram.AlignMiddleCenter:
		x -= w / 2
		y -= h / 2
	case diagram.AlignMiddleRight:
		x -= w
		y -= h / 2
	case diagram.AlignBottomCenter:
		x -= w / 2
		y -= h
	}
	return int(x), int(y)
}

// CursorShape maps a diagram cursor to the closest Ebitengine cursor shape.
// The idle cursor is a crosshair.
func CursorShape(c diagram.Cursor) ebiten.CursorShapeType {
	switch c {
	case diagram.CursorGrabbing:
		return ebiten.CursorShapeMove
	case diagram.CursorGrab:
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeCrosshair
}
