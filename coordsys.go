package diagram

import (
	"math"
	"strconv"
)

// TickMargin is the distance in pixels from the canvas edge inside which no
// tick is placed.
const TickMargin = 10.0

// MinTickSpacing is the smallest pixel distance between neighbouring ticks.
// An axis whose ticks would be closer gets none, which bounds the tick count
// by the canvas size.
const MinTickSpacing = 4.0

// Transform maps world coordinates to screen coordinates:
//
//	screen.x = Origin.X + world.x*ScaleX
//	screen.y = Origin.Y - world.y*ScaleY
//
// World Y points up, screen Y points down.
type Transform struct {
	Origin         Vec2
	ScaleX, ScaleY float64
}

// CoordinateSystemType selects how the axes are laid out.
type CoordinateSystemType uint8

const (
	Cartesian CoordinateSystemType = iota // perpendicular X and Y axes
	Polar                                 // reserved; rendered as cartesian
)

// CoordinateSystem holds a world↔screen Transform and the display settings
// for its axes. Display settings affect rendering only.
//
// A CoordinateSystem is owned by one scene and is not safe for concurrent
// mutation.
type CoordinateSystem struct {
	Type CoordinateSystemType

	// XRange and YRange are the world-space extents the diagram is meant to
	// show. FitToCanvas uses them to derive origin and scale.
	XRange, YRange Range

	// TickInterval is the world-space distance between ticks on each axis.
	TickInterval Vec2
	// TickSize is the tick mark length in pixels.
	TickSize float64

	ShowTicks  bool
	ShowLabels bool
	ShowArrows bool
	ArrowSize  float64

	AxisColor  Color
	AxisWidth  float64
	LabelColor Color

	transform Transform
	matrix    [6]float64
	dirty     bool
}

// NewCoordinateSystem returns a cartesian system with its origin at (0, 0),
// unit scale and the default axis styling.
func NewCoordinateSystem() *CoordinateSystem {
	return &CoordinateSystem{
		Type:         Cartesian,
		XRange:       Range{Min: -10, Max: 10},
		YRange:       Range{Min: -10, Max: 10},
		TickInterval: Vec2{1, 1},
		TickSize:     6,
		ShowTicks:    true,
		ShowLabels:   true,
		ShowArrows:   true,
		ArrowSize:    8,
		AxisColor:    ColorWhite.WithAlpha(0.6),
		AxisWidth:    2,
		LabelColor:   ColorWhite.WithAlpha(0.8),
		transform:    Transform{ScaleX: 1, ScaleY: 1},
		dirty:        true,
	}
}

// Transform returns a copy of the current transform.
func (cs *CoordinateSystem) Transform() Transform {
	return cs.transform
}

// SetTransform replaces the transform.
func (cs *CoordinateSystem) SetTransform(t Transform) {
	cs.transform = t
	cs.dirty = true
}

// SetOrigin moves the screen position of the world origin.
func (cs *CoordinateSystem) SetOrigin(x, y float64) {
	cs.transform.Origin = Vec2{x, y}
	cs.dirty = true
}

// SetScale sets a uniform scale in pixels per world unit.
func (cs *CoordinateSystem) SetScale(s float64) {
	cs.SetScaleXY(s, s)
}

// SetScaleXY sets per-axis scales in pixels per world unit.
func (cs *CoordinateSystem) SetScaleXY(sx, sy float64) {
	cs.transform.ScaleX = sx
	cs.transform.ScaleY = sy
	cs.dirty = true
}

// FitToCanvas sets origin and scale so XRange and YRange fill a canvas of the
// given size minus padding on every side. The scale is uniform: the smaller
// of the two axis fits wins.
func (cs *CoordinateSystem) FitToCanvas(width, height, padding float64) {
	w := width - 2*padding
	h := height - 2*padding
	spanX := cs.XRange.Max - cs.XRange.Min
	spanY := cs.YRange.Max - cs.YRange.Min
	if w <= 0 || h <= 0 || spanX <= 0 || spanY <= 0 {
		return
	}
	s := math.Min(w/spanX, h/spanY)
	cs.SetScale(s)
	cs.SetOrigin(padding+(w-spanX*s)/2-cs.XRange.Min*s, padding+(h-spanY*s)/2+cs.YRange.Max*s)
}

// Apply maps a world point to the screen.
func (t Transform) Apply(w Vec2) Vec2 {
	return Vec2{t.Origin.X + w.X*t.ScaleX, t.Origin.Y - w.Y*t.ScaleY}
}

// Invert maps a screen point back to the world. Each axis is inverted on its
// own, so any non-zero scale round-trips however small. An axis with a zero
// scale has no inverse and passes the screen coordinate through.
func (t Transform) Invert(s Vec2) Vec2 {
	w := s
	if t.ScaleX != 0 {
		w.X = (s.X - t.Origin.X) / t.ScaleX
	}
	if t.ScaleY != 0 {
		w.Y = (t.Origin.Y - s.Y) / t.ScaleY
	}
	return w
}

// computeMatrix recomputes the cached world→screen matrix if dirty.
func (cs *CoordinateSystem) computeMatrix() {
	if !cs.dirty {
		return
	}
	cs.dirty = false
	t := cs.transform
	cs.matrix = [6]float64{t.ScaleX, 0, 0, -t.ScaleY, t.Origin.X, t.Origin.Y}
}

// Matrix returns the world→screen affine matrix [a, b, c, d, tx, ty].
func (cs *CoordinateSystem) Matrix() [6]float64 {
	cs.computeMatrix()
	return cs.matrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (cs *CoordinateSystem) WorldToScreen(wx, wy float64) Vec2 {
	return cs.transform.Apply(Vec2{wx, wy})
}

// ScreenToWorld converts screen coordinates to world coordinates. It is the
// inverse of WorldToScreen for any non-zero scale. On an axis with zero scale
// the screen coordinate is returned unchanged rather than an infinity.
func (cs *CoordinateSystem) ScreenToWorld(sx, sy float64) Vec2 {
	return cs.transform.Invert(Vec2{sx, sy})
}

// PointsToScreen maps a slice of world points to screen space.
func (cs *CoordinateSystem) PointsToScreen(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = cs.WorldToScreen(p.X, p.Y)
	}
	return out
}

// PointsToWorld maps a slice of screen points to world space.
func (cs *CoordinateSystem) PointsToWorld(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = cs.ScreenToWorld(p.X, p.Y)
	}
	return out
}

// --- Axis layout ---

// Axis identifies one axis of a coordinate system.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Tick is one tick mark on an axis. Pos is the screen coordinate along the
// axis (x for AxisX, y for AxisY). Value is the rounded world value used for
// the label.
type Tick struct {
	Axis  Axis
	Pos   float64
	Value float64
	Label string
}

// AxisTicks holds the tick marks of both axes. Each slice lists the positive
// direction first, walking outward from the origin, then the negative
// direction.
type AxisTicks struct {
	X []Tick
	Y []Tick
}

// Ticks lays out tick marks for a canvas of the given size. Ticks sit at
// multiples of TickInterval*scale pixels from the origin and stop TickMargin
// pixels short of the canvas edges. An axis whose pixel step is below
// MinTickSpacing, or not a finite number, has no ticks.
func (cs *CoordinateSystem) Ticks(width, height float64) AxisTicks {
	t := cs.transform
	var out AxisTicks

	if step := cs.TickInterval.X * t.ScaleX; tickStepOK(step) {
		label := func(pos float64) Tick {
			v := math.Round((pos - t.Origin.X) / t.ScaleX)
			return Tick{Axis: AxisX, Pos: pos, Value: v, Label: formatTick(v)}
		}
		for k := 1; ; k++ {
			pos := t.Origin.X + float64(k)*step
			if pos >= width-TickMargin {
				break
			}
			out.X = append(out.X, label(pos))
		}
		for k := 1; ; k++ {
			pos := t.Origin.X - float64(k)*step
			if pos <= TickMargin {
				break
			}
			out.X = append(out.X, label(pos))
		}
	}

	if step := cs.TickInterval.Y * t.ScaleY; tickStepOK(step) {
		label := func(pos float64) Tick {
			v := math.Round((t.Origin.Y - pos) / t.ScaleY)
			return Tick{Axis: AxisY, Pos: pos, Value: v, Label: formatTick(v)}
		}
		// World-positive Y is screen-up.
		for k := 1; ; k++ {
			pos := t.Origin.Y - float64(k)*step
			if pos <= TickMargin {
				break
			}
			out.Y = append(out.Y, label(pos))
		}
		for k := 1; ; k++ {
			pos := t.Origin.Y + float64(k)*step
			if pos >= height-TickMargin {
				break
			}
			out.Y = append(out.Y, label(pos))
		}
	}
	return out
}

func tickStepOK(step float64) bool {
	return step >= MinTickSpacing && !math.IsInf(step, 1)
}

func formatTick(v float64) string {
	if v == 0 {
		v = 0 // normalise -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Segment is a line segment in screen space.
type Segment struct {
	From, To Vec2
}

// AxisLayout is the screen-space geometry of both axes.
type AxisLayout struct {
	X, Y           Segment
	XArrow, YArrow [3]Vec2 // arrow-head triangles at the positive ends
}

// Axes computes the axis lines through the origin spanning the canvas, and the
// arrow heads at the right end of the X axis and the top of the Y axis.
func (cs *CoordinateSystem) Axes(width, height float64) AxisLayout {
	o := cs.transform.Origin
	a := cs.ArrowSize
	return AxisLayout{
		X: Segment{Vec2{0, o.Y}, Vec2{width, o.Y}},
		Y: Segment{Vec2{o.X, height}, Vec2{o.X, 0}},
		XArrow: [3]Vec2{
			{width, o.Y},
			{width - a, o.Y - a/2},
			{width - a, o.Y + a/2},
		},
		YArrow: [3]Vec2{
			{o.X, 0},
			{o.X - a/2, a},
			{o.X + a/2, a},
		},
	}
}

// Draw renders the axes, arrow heads, ticks and tick labels onto c.
func (cs *CoordinateSystem) Draw(c Canvas, width, height float64) {
	axes := cs.Axes(width, height)
	c.StrokeLine(axes.X.From, axes.X.To, cs.AxisWidth, cs.AxisColor)
	c.StrokeLine(axes.Y.From, axes.Y.To, cs.AxisWidth, cs.AxisColor)
	if cs.ShowArrows {
		c.FillPolygon(axes.XArrow[:], cs.AxisColor)
		c.FillPolygon(axes.YArrow[:], cs.AxisColor)
	}
	if !cs.ShowTicks {
		return
	}

	o := cs.transform.Origin
	half := cs.TickSize / 2
	ticks := cs.Ticks(width, height)
	for _, tk := range ticks.X {
		c.StrokeLine(Vec2{tk.Pos, o.Y - half}, Vec2{tk.Pos, o.Y + half}, 1, cs.AxisColor)
		if cs.ShowLabels {
			c.DrawText(tk.Label, Vec2{tk.Pos, o.Y + cs.TickSize + 2}, AlignTopCenter, cs.LabelColor)
		}
	}
	for _, tk := range ticks.Y {
		c.StrokeLine(Vec2{o.X - half, tk.Pos}, Vec2{o.X + half, tk.Pos}, 1, cs.AxisColor)
		if cs.ShowLabels {
			c.DrawText(tk.Label, Vec2{o.X - cs.TickSize - 4, tk.Pos}, AlignMiddleRight, cs.LabelColor)
		}
	}
}
