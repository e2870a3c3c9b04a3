// Package ggcanvas renders diagrams off-screen with fogleman/gg and writes PNG
// snapshots.
package ggcanvas

import (
	"github.com/fogleman/gg"

	"github.com/vveducation/diagram"
)

// Canvas implements diagram.Canvas on a *gg.Context.
type Canvas struct {
	ctx *gg.Context
}

// New wraps ctx.
func New(ctx *gg.Context) *Canvas {
	return &Canvas{ctx: ctx}
}

// NewSized creates a width×height context filled with bg.
func NewSized(width, height int, bg diagram.Color) *Canvas {
	ctx := gg.NewContext(width, height)
	setColor(ctx, bg)
	ctx.Clear()
	return New(ctx)
}

// Context returns the underlying context.
func (c *Canvas) Context() *gg.Context { return c.ctx }

func setColor(ctx *gg.Context, col diagram.Color) {
	ctx.SetRGBA(col.R, col.G, col.B, col.A)
}

func (c *Canvas) StrokeLine(from, to diagram.Vec2, width float64, col diagram.Color) {
	setColor(c.ctx, col)
	c.ctx.SetLineWidth(width)
	c.ctx.DrawLine(from.X, from.Y, to.X, to.Y)
	c.ctx.Stroke()
}

func (c *Canvas) FillCircle(center diagram.Vec2, radius float64, col diagram.Color) {
	setColor(c.ctx, col)
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.ctx.Fill()
}

func (c *Canvas) StrokeCircle(center diagram.Vec2, radius, width float64, col diagram.Color) {
	setColor(c.ctx, col)
	c.ctx.SetLineWidth(width)
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.ctx.Stroke()
}

func (c *Canvas) FillPolygon(pts []diagram.Vec2, col diagram.Color) {
	if len(pts) < 3 {
		return
	}
	setColor(c.ctx, col)
	c.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ctx.LineTo(p.X, p.Y)
	}
	c.ctx.ClosePath()
	c.ctx.Fill()
}

func (c *Canvas) DrawText(s string, pos diagram.Vec2, align diagram.TextAlign, col diagram.Color) {
	ax, ay := anchor(align)
	setColor(c.ctx, col)
	c.ctx.DrawStringAnchored(s, pos.X, pos.Y, ax, ay)
}

// anchor converts an alignment to gg's fractional anchor.
func anchor(align diagram.TextAlign) (float64, float64) {
	switch align {
	case diagram.AlignTopCenter:
		return 0.5, 1
	case diagram.AlignMiddleLeft:
		return 0, 0.5
	case diagram.AlignMiddleCenter:
		return 0.5, 0.5
	case diagram.AlignMiddleRight:
		return 1, 0.5
	case diagram.AlignBottomCenter:
		return 0.5, 0
	}
	return 0, 1
}
