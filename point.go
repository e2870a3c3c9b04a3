package diagram

// Point defaults.
const (
	DefaultPointRadius      = 10.0
	DefaultPointHoverRadius = 15.0
	DefaultPointBorderWidth = 2.0

	// hoverHaloPad is how far the hover halo extends past HoverRadius.
	hoverHaloPad = 3.0
)

// InteractivePoint is a draggable handle in screen space. Points are created
// by a PointManager and keep their identity until the manager's collection is
// replaced.
type InteractivePoint struct {
	X, Y float64

	// Radius is the drawn size. HoverRadius is the hit-test size and is
	// usually larger.
	Radius      float64
	HoverRadius float64

	Color       Color
	BorderColor Color
	BorderWidth float64
	HoverColor  Color

	Draggable bool

	Label       string
	LabelColor  Color
	LabelOffset Vec2

	hovered  bool
	dragging bool
}

func newInteractivePoint(x, y float64) *InteractivePoint {
	return &InteractivePoint{
		X:           x,
		Y:           y,
		Radius:      DefaultPointRadius,
		HoverRadius: DefaultPointHoverRadius,
		Color:       ColorControl,
		BorderColor: ColorWhite,
		BorderWidth: DefaultPointBorderWidth,
		HoverColor:  ColorControl.WithAlpha(0.3),
		Draggable:   true,
		LabelColor:  ColorWhite,
	}
}

// Position returns the point's screen position.
func (p *InteractivePoint) Position() Vec2 { return Vec2{p.X, p.Y} }

// SetPosition moves the point.
func (p *InteractivePoint) SetPosition(x, y float64) {
	p.X = x
	p.Y = y
}

// Hovered reports whether the pointer is over the point.
func (p *InteractivePoint) Hovered() bool { return p.hovered }

// Dragging reports whether the point is being dragged.
func (p *InteractivePoint) Dragging() bool { return p.dragging }

// HitTest reports whether (x, y) is strictly closer than HoverRadius to the
// point's center.
func (p *InteractivePoint) HitTest(x, y float64) bool {
	dx := p.X - x
	dy := p.Y - y
	return dx*dx+dy*dy < p.HoverRadius*p.HoverRadius
}

// Draw renders the hover halo (while hovered or dragged), body, border and
// label.
func (p *InteractivePoint) Draw(c Canvas) {
	pos := p.Position()
	if p.hovered || p.dragging {
		c.FillCircle(pos, p.HoverRadius+hoverHaloPad, p.HoverColor)
	}
	c.FillCircle(pos, p.Radius, p.Color)
	if p.BorderWidth > 0 {
		c.StrokeCircle(pos, p.Radius, p.BorderWidth, p.BorderColor)
	}
	if p.Label != "" {
		c.DrawText(p.Label, pos.Add(p.LabelOffset), AlignMiddleCenter, p.LabelColor)
	}
}

// PointOptions overrides point defaults. Zero fields leave the default in
// place. A negative BorderWidth removes the border; Fixed makes the point
// non-draggable.
type PointOptions struct {
	Radius      float64
	HoverRadius float64
	Color       Color
	BorderColor Color
	BorderWidth float64
	HoverColor  Color
	Fixed       bool
	Label       string
	LabelColor  Color
	LabelOffset Vec2
}

func (o PointOptions) apply(p *InteractivePoint) {
	if o.Radius > 0 {
		p.Radius = o.Radius
	}
	if o.HoverRadius > 0 {
		p.HoverRadius = o.HoverRadius
	}
	if o.Color != (Color{}) {
		p.Color = o.Color
	}
	if o.BorderColor != (Color{}) {
		p.BorderColor = o.BorderColor
	}
	switch {
	case o.BorderWidth > 0:
		p.BorderWidth = o.BorderWidth
	case o.BorderWidth < 0:
		p.BorderWidth = 0
	}
	if o.HoverColor != (Color{}) {
		p.HoverColor = o.HoverColor
	}
	if o.Fixed {
		p.Draggable = false
	}
	if o.Label != "" {
		p.Label = o.Label
	}
	if o.LabelColor != (Color{}) {
		p.LabelColor = o.LabelColor
	}
	if o.LabelOffset != (Vec2{}) {
		p.LabelOffset = o.LabelOffset
	}
}

// PointData describes one point for PointManager.SetPoints. Options are
// applied after the shared options passed to SetPoints.
type PointData struct {
	X, Y    float64
	Options PointOptions
}
