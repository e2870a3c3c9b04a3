package diagram

import "math"

// Control point limits for AddControlPoint and RemoveControlPoint.
const (
	MaxControlPoints = 7
	MinControlPoints = 2

	// CurveHoverDistance is how close, in pixels, the pointer must be to the
	// curve for HoverT to report a parameter.
	CurveHoverDistance = 20.0

	// addPointLift is how far above the midpoint of the last two control
	// points, in pixels, AddControlPoint places the new point.
	addPointLift = 50.0

	curveSegments = 100
)

// constructionColors cycle through the intermediate de Casteljau levels.
var constructionColors = []Color{
	{1, 0.420, 0.420, 0.6},
	{1, 0.902, 0.427, 0.6},
	{0.471, 0.784, 1, 0.6},
	{0.784, 0.588, 1, 0.6},
	{0.588, 1, 0.588, 0.6},
}

// Options controls what a BezierDiagram draws and how it plays.
type Options struct {
	ShowGrid         bool
	ShowAxes         bool
	ShowControlLines bool
	ShowConstruction bool
	ShowMovingPoint  bool

	CurveColor        Color
	ControlPointColor Color

	// Duration is the playback pass length in seconds.
	Duration float64
	// Easing names the playback easing curve.
	Easing string
	// ConstantSpeed moves the playback point at constant arc-length speed.
	ConstantSpeed bool
}

// DefaultOptions returns the standard diagram look: grid, axes, control lines,
// construction and moving point on, three second linear playback.
func DefaultOptions() Options {
	return Options{
		ShowGrid:          true,
		ShowAxes:          true,
		ShowControlLines:  true,
		ShowConstruction:  true,
		ShowMovingPoint:   true,
		CurveColor:        ColorCurve,
		ControlPointColor: ColorControl,
		Duration:          DefaultDuration,
		Easing:            "linear",
	}
}

// State is a snapshot of a diagram. Positions are in world space.
type State struct {
	T             float64
	CurvePoint    Vec2
	ControlPoints []Vec2
	Order         int
	Playing       bool
}

// BezierDiagram is an interactive Bézier curve scene: world-space control
// points shown through a CoordinateSystem as draggable screen-space handles,
// a parameter t that can be set or played back, and the de Casteljau
// construction at t.
//
// A BezierDiagram is driven by one event stream. Call Update once per frame
// and Draw whenever a frame is rendered.
type BezierDiagram struct {
	Options Options

	coords   *CoordinateSystem
	grid     *Grid
	points   *PointManager
	playback *Playback

	world    []Vec2
	t        float64
	hoverT   float64 // -1 when the pointer is not near the curve
	arcDirty bool

	handlers    handlerRegistry
	injectQueue []syntheticPointerEvent
	script      *ScriptRunner
	snapshotter Snapshotter
	log         *debugLog
}

// NewBezierDiagram creates a diagram over cs with the given world-space
// control points. A nil cs uses NewCoordinateSystem.
func NewBezierDiagram(cs *CoordinateSystem, world []Vec2, opts Options) *BezierDiagram {
	if cs == nil {
		cs = NewCoordinateSystem()
	}
	d := &BezierDiagram{
		Options:  opts,
		coords:   cs,
		grid:     NewGrid(),
		playback: NewPlayback(opts.Duration),
		hoverT:   -1,
		log:      &debugLog{},
	}
	d.playback.SetEasing(opts.Easing)
	d.points = NewPointManager(d)
	d.points.log = d.log
	d.SetControlPoints(world)
	return d
}

// DefaultControlPoints returns the cubic the diagram starts with when none are
// configured, placed inside the given world rectangle.
func DefaultControlPoints(xr, yr Range) []Vec2 {
	w := xr.Max - xr.Min
	h := yr.Max - yr.Min
	at := func(fx, fy float64) Vec2 { return Vec2{xr.Min + w*fx, yr.Min + h*fy} }
	return []Vec2{at(0.1, 0.2), at(0.3, 0.9), at(0.7, 0.9), at(0.9, 0.2)}
}

// SetDebugMode enables or disables debug logging to stderr.
func (d *BezierDiagram) SetDebugMode(enabled bool) {
	d.log.enabled = enabled
}

// CoordinateSystem returns the diagram's coordinate system. After changing its
// transform call SyncPoints so the handles follow.
func (d *BezierDiagram) CoordinateSystem() *CoordinateSystem { return d.coords }

// Grid returns the background grid.
func (d *BezierDiagram) Grid() *Grid { return d.grid }

// Points returns the point manager holding the screen-space handles.
func (d *BezierDiagram) Points() *PointManager { return d.points }

// Playback returns the playback driving t.
func (d *BezierDiagram) Playback() *Playback { return d.playback }

// --- Control points ---

// SetControlPoints replaces the control polygon. Handles are rebuilt, which
// cancels any drag in progress.
func (d *BezierDiagram) SetControlPoints(world []Vec2) {
	d.world = append([]Vec2(nil), world...)
	d.log.debugCheckDegree(d.world)
	d.rebuildHandles()
}

func (d *BezierDiagram) rebuildHandles() {
	data := make([]PointData, len(d.world))
	for i, w := range d.world {
		s := d.coords.WorldToScreen(w.X, w.Y)
		data[i] = PointData{X: s.X, Y: s.Y}
	}
	d.points.SetPoints(data, PointOptions{Color: d.Options.ControlPointColor})
	d.arcDirty = true
	d.hoverT = -1
}

// SyncPoints moves the handles to the current screen position of each world
// control point. Call it after changing the coordinate system.
func (d *BezierDiagram) SyncPoints() {
	for i, w := range d.world {
		s := d.coords.WorldToScreen(w.X, w.Y)
		d.points.Point(i).SetPosition(s.X, s.Y)
	}
}

// Resize fits the coordinate system's ranges to a canvas and re-syncs the
// handles.
func (d *BezierDiagram) Resize(width, height, padding float64) {
	d.coords.FitToCanvas(width, height, padding)
	d.SyncPoints()
}

// ControlPoints returns a copy of the world-space control polygon.
func (d *BezierDiagram) ControlPoints() []Vec2 {
	return append([]Vec2(nil), d.world...)
}

// ScreenControlPoints returns the control polygon in screen space.
func (d *BezierDiagram) ScreenControlPoints() []Vec2 {
	return d.points.Positions()
}

// Order returns the curve degree.
func (d *BezierDiagram) Order() int { return len(d.world) - 1 }

// AddControlPoint raises the degree by inserting a point before the last one,
// halfway between the last two and lifted addPointLift pixels on screen. It
// returns false when the polygon already has MaxControlPoints.
func (d *BezierDiagram) AddControlPoint() bool {
	n := len(d.world)
	if n >= MaxControlPoints || n < 2 {
		return false
	}
	screen := d.ScreenControlPoints()
	mid := screen[n-2].Lerp(screen[n-1], 0.5)
	w := d.coords.ScreenToWorld(mid.X, mid.Y-addPointLift)

	world := make([]Vec2, 0, n+1)
	world = append(world, d.world[:n-1]...)
	world = append(world, w, d.world[n-1])
	d.SetControlPoints(world)
	d.log.logf("control point added: order %d", d.Order())
	d.handlers.emitPoints(d.world)
	return true
}

// RemoveControlPoint lowers the degree by removing the second-to-last point.
// It returns false when the polygon has MinControlPoints or fewer.
func (d *BezierDiagram) RemoveControlPoint() bool {
	n := len(d.world)
	if n <= MinControlPoints {
		return false
	}
	world := append([]Vec2(nil), d.world[:n-2]...)
	world = append(world, d.world[n-1])
	d.SetControlPoints(world)
	d.log.logf("control point removed: order %d", d.Order())
	d.handlers.emitPoints(d.world)
	return true
}

// OnDragStart implements DragListener.
func (d *BezierDiagram) OnDragStart(int, *InteractivePoint) {
	d.hoverT = -1
}

// OnDrag implements DragListener. The dragged handle's screen position is
// mapped back to world space.
func (d *BezierDiagram) OnDrag(i int, p *InteractivePoint) {
	d.world[i] = d.coords.ScreenToWorld(p.X, p.Y)
	d.arcDirty = true
}

// OnDragEnd implements DragListener.
func (d *BezierDiagram) OnDragEnd(int, *InteractivePoint) {
	d.handlers.emitPoints(d.world)
}

// --- Parameter and playback ---

// T returns the current curve parameter.
func (d *BezierDiagram) T() float64 { return d.t }

// SetT sets the curve parameter, clamped to [0, 1]. Playback continues from
// the new value.
func (d *BezierDiagram) SetT(t float64) {
	d.syncArcLength()
	d.playback.Seek(t)
	d.t = d.playback.T()
	d.handlers.emitT(d.t)
}

// Playing reports whether playback is running.
func (d *BezierDiagram) Playing() bool { return d.playback.Playing() }

// Play starts playback. It does nothing if already playing.
func (d *BezierDiagram) Play() {
	if d.playback.Playing() {
		return
	}
	d.playback.Play()
	d.handlers.emitPlay()
}

// Pause stops playback. OnPause fires even when already paused.
func (d *BezierDiagram) Pause() {
	d.playback.Pause()
	d.handlers.emitPause()
}

// TogglePlay pauses a running diagram and plays a paused one.
func (d *BezierDiagram) TogglePlay() {
	if d.playback.Playing() {
		d.Pause()
	} else {
		d.Play()
	}
}

// Reset pauses and returns t to 0.
func (d *BezierDiagram) Reset() {
	d.Pause()
	d.playback.Reset()
	d.t = 0
	d.handlers.emitReset()
}

func (r *handlerRegistry) emitPlay()  { emitSignal(r.play) }
func (r *handlerRegistry) emitPause() { emitSignal(r.pause) }
func (r *handlerRegistry) emitReset() { emitSignal(r.reset) }

// syncArcLength rebuilds the constant-speed table after the curve changed.
func (d *BezierDiagram) syncArcLength() {
	if !d.Options.ConstantSpeed || len(d.world) == 0 {
		if d.playback.arc != nil {
			d.playback.SetArcLength(nil)
		}
		return
	}
	if d.arcDirty || d.playback.arc == nil {
		d.playback.SetArcLength(NewArcLengthTable(d.world, DefaultSteps))
		d.arcDirty = false
	}
}

// Update advances the diagram by dt seconds: one scripted step, one injected
// pointer event, then playback.
func (d *BezierDiagram) Update(dt float64) {
	if d.script != nil {
		d.script.step(d)
	}
	d.processInjectedInput()

	if !d.playback.Playing() {
		return
	}
	d.syncArcLength()
	t, changed := d.playback.Update(dt)
	if !changed {
		return
	}
	d.t = t
	d.handlers.emitT(t)
	if !d.playback.Playing() {
		d.handlers.emitPause()
	}
}

// --- Pointer input ---

// HandleMouseMove forwards a pointer move in screen coordinates. When no
// point is dragged the curve hover parameter is updated.
func (d *BezierDiagram) HandleMouseMove(pos Vec2) {
	d.points.HandleMouseMove(pos)
	if d.points.IsDragging() {
		return
	}
	d.checkCurveHover(pos)
}

// HandleMouseDown forwards a press in screen coordinates.
func (d *BezierDiagram) HandleMouseDown(pos Vec2) {
	d.points.HandleMouseDown(pos)
}

// HandleMouseUp forwards a release.
func (d *BezierDiagram) HandleMouseUp() {
	d.points.HandleMouseUp()
}

// HandleMouseLeave clears point and curve hover.
func (d *BezierDiagram) HandleMouseLeave() {
	d.points.HandleMouseLeave()
	d.hoverT = -1
}

func (d *BezierDiagram) checkCurveHover(pos Vec2) {
	if len(d.world) == 0 {
		d.hoverT = -1
		return
	}
	c := FindClosestT(d.ScreenControlPoints(), pos, DefaultSteps)
	if c.Distance < CurveHoverDistance {
		d.hoverT = c.T
	} else {
		d.hoverT = -1
	}
}

// HoverT returns the curve parameter nearest the pointer and true when the
// pointer is within CurveHoverDistance of the curve.
func (d *BezierDiagram) HoverT() (float64, bool) {
	return d.hoverT, d.hoverT >= 0
}

// Cursor returns the pointer style for the current state.
func (d *BezierDiagram) Cursor() Cursor { return d.points.Cursor() }

// State returns a snapshot of the diagram.
func (d *BezierDiagram) State() State {
	s := State{
		T:             d.t,
		ControlPoints: d.ControlPoints(),
		Order:         d.Order(),
		Playing:       d.playback.Playing(),
	}
	if len(d.world) > 0 {
		s.CurvePoint = BezierPoint(d.world, d.t)
	}
	return s
}

// --- Drawing ---

// Draw renders the diagram onto a canvas of the given size: grid, axes,
// control polygon, curve, traversed part, construction, handles, moving point
// and hover point, in that order.
func (d *BezierDiagram) Draw(c Canvas, width, height float64) {
	o := d.coords.Transform().Origin
	if d.Options.ShowGrid {
		d.grid.Draw(c, width, height, o.X, o.Y)
	}
	if d.Options.ShowAxes {
		d.coords.Draw(c, width, height)
	}

	screen := d.ScreenControlPoints()
	if len(screen) == 0 {
		return
	}
	if d.Options.ShowControlLines {
		StrokeDashedPolyline(c, screen, 5, 5, 1, ColorWhite.WithAlpha(0.3))
	}

	d.drawCurve(c, screen, 0, 1, curveSegments, 3, d.Options.CurveColor)
	if d.t > 0 {
		d.drawCurve(c, screen, 0, d.t, int(math.Floor(d.t*curveSegments)), 4, ColorWhite)
	}

	if d.Options.ShowConstruction {
		levels := DeCasteljauLevels(screen, d.t)
		for i := 1; i < len(levels)-1; i++ {
			col := constructionColors[(i-1)%len(constructionColors)]
			StrokePolyline(c, levels[i], 2, col)
			for _, p := range levels[i] {
				c.FillCircle(p, 5, col)
			}
		}
	}

	d.points.Draw(c)

	if d.Options.ShowMovingPoint {
		p := BezierPoint(screen, d.t)
		c.FillCircle(p, 20, ColorHighlight.WithAlpha(0.15))
		c.FillCircle(p, 14, ColorHighlight.WithAlpha(0.3))
		c.FillCircle(p, 8, ColorHighlight)
		c.StrokeCircle(p, 8, 2, ColorWhite)
	}

	if ht, ok := d.HoverT(); ok {
		p := BezierPoint(screen, ht)
		c.FillCircle(p, 6, ColorCurve.WithAlpha(0.8))
		c.StrokeCircle(p, 6, 2, ColorWhite)
	}
}

// drawCurve strokes the curve between parameters from and to as a polyline of
// segments pieces. At least one segment is drawn.
func (d *BezierDiagram) drawCurve(c Canvas, screen []Vec2, from, to float64, segments int, width float64, col Color) {
	if segments < 1 {
		segments = 1
	}
	StrokeParametric(c, func(t float64) Vec2 { return BezierPoint(screen, t) }, from, to, segments, width, col)
}
