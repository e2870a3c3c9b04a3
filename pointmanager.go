package diagram

import "fmt"

// DragListener receives drag notifications from a PointManager. Calls are
// synchronous and happen on the goroutine feeding pointer events.
type DragListener interface {
	OnDragStart(index int, p *InteractivePoint)
	OnDrag(index int, p *InteractivePoint)
	OnDragEnd(index int, p *InteractivePoint)
}

// DragFuncs adapts optional functions to DragListener. Nil fields are skipped.
type DragFuncs struct {
	Start func(index int, p *InteractivePoint)
	Move  func(index int, p *InteractivePoint)
	End   func(index int, p *InteractivePoint)
}

func (f DragFuncs) OnDragStart(i int, p *InteractivePoint) {
	if f.Start != nil {
		f.Start(i, p)
	}
}

func (f DragFuncs) OnDrag(i int, p *InteractivePoint) {
	if f.Move != nil {
		f.Move(i, p)
	}
}

func (f DragFuncs) OnDragEnd(i int, p *InteractivePoint) {
	if f.End != nil {
		f.End(i, p)
	}
}

// PointManager owns a set of InteractivePoints and turns pointer events into
// hover and drag state. At most one point is dragged and, while no drag is
// active, at most one point is hovered. Hover is frozen for every point while
// a drag is in progress.
type PointManager struct {
	points   []*InteractivePoint
	listener DragListener
	dragging int
	hovered  int
	log      *debugLog
}

// NewPointManager creates an empty manager. listener may be nil.
func NewPointManager(listener DragListener) *PointManager {
	return &PointManager{listener: listener, dragging: -1, hovered: -1}
}

// SetListener replaces the drag listener. nil disables notifications.
func (m *PointManager) SetListener(l DragListener) { m.listener = l }

// SetDebugMode enables or disables debug logging of drag transitions to
// stderr.
func (m *PointManager) SetDebugMode(enabled bool) {
	if m.log == nil {
		m.log = &debugLog{}
	}
	m.log.enabled = enabled
}

// AddPoint appends a point and returns it.
func (m *PointManager) AddPoint(x, y float64, opts PointOptions) *InteractivePoint {
	p := newInteractivePoint(x, y)
	opts.apply(p)
	m.points = append(m.points, p)
	return p
}

// SetPoints replaces every point. Point i is labelled "P<i>" unless the shared
// or per-point options provide a label. Drag and hover state is reset; prior
// *InteractivePoint values are no longer managed.
func (m *PointManager) SetPoints(data []PointData, shared PointOptions) {
	m.points = make([]*InteractivePoint, len(data))
	for i, d := range data {
		p := newInteractivePoint(d.X, d.Y)
		p.Label = fmt.Sprintf("P%d", i)
		shared.apply(p)
		d.Options.apply(p)
		m.points[i] = p
	}
	m.dragging = -1
	m.hovered = -1
}

// Len returns the number of points.
func (m *PointManager) Len() int { return len(m.points) }

// Point returns point i, or nil if i is out of range.
func (m *PointManager) Point(i int) *InteractivePoint {
	if i < 0 || i >= len(m.points) {
		return nil
	}
	return m.points[i]
}

// Points returns the managed points in index order. The slice is shared.
func (m *PointManager) Points() []*InteractivePoint { return m.points }

// Positions returns a copy of every point's position.
func (m *PointManager) Positions() []Vec2 {
	out := make([]Vec2, len(m.points))
	for i, p := range m.points {
		out[i] = p.Position()
	}
	return out
}

// DraggingIndex returns the index of the dragged point, or -1.
func (m *PointManager) DraggingIndex() int { return m.dragging }

// HoveredIndex returns the index of the hovered point, or -1.
func (m *PointManager) HoveredIndex() int { return m.hovered }

// IsDragging reports whether a drag is in progress.
func (m *PointManager) IsDragging() bool { return m.dragging >= 0 }

// HandleMouseMove processes a pointer move. During a drag only the dragged
// point moves and OnDrag fires; no hover is evaluated. Otherwise the first
// point hit in index order becomes hovered and every other point is cleared.
func (m *PointManager) HandleMouseMove(pos Vec2) {
	if m.dragging >= 0 {
		p := m.points[m.dragging]
		p.SetPosition(pos.X, pos.Y)
		if m.listener != nil {
			m.listener.OnDrag(m.dragging, p)
		}
		return
	}

	m.hovered = -1
	for i, p := range m.points {
		p.hovered = m.hovered < 0 && p.HitTest(pos.X, pos.Y)
		if p.hovered {
			m.hovered = i
		}
	}
}

// HandleMouseLeave clears hover on every point. It is the move handler for a
// pointer that has left the surface.
func (m *PointManager) HandleMouseLeave() {
	m.hovered = -1
	for _, p := range m.points {
		p.hovered = false
	}
}

// HandleMouseDown starts dragging the first point in index order that is both
// hit and draggable. Later points are ignored even if hit. A press during an
// active drag is ignored.
func (m *PointManager) HandleMouseDown(pos Vec2) {
	if m.dragging >= 0 {
		return
	}
	for i, p := range m.points {
		if !p.Draggable || !p.HitTest(pos.X, pos.Y) {
			continue
		}
		m.dragging = i
		p.dragging = true
		m.log.logf("drag start: point %d (%s) at (%.1f, %.1f)", i, p.Label, p.X, p.Y)
		if m.listener != nil {
			m.listener.OnDragStart(i, p)
		}
		return
	}
}

// HandleMouseUp ends the active drag and fires OnDragEnd with the point's
// final state. It is a no-op when nothing is dragged.
func (m *PointManager) HandleMouseUp() {
	if m.dragging < 0 {
		return
	}
	i := m.dragging
	p := m.points[i]
	p.dragging = false
	m.dragging = -1
	m.log.logf("drag end: point %d (%s) at (%.1f, %.1f)", i, p.Label, p.X, p.Y)
	if m.listener != nil {
		m.listener.OnDragEnd(i, p)
	}
}

// Cursor returns the pointer style for the current state.
func (m *PointManager) Cursor() Cursor {
	switch {
	case m.dragging >= 0:
		return CursorGrabbing
	case m.hovered >= 0:
		return CursorGrab
	}
	return CursorDefault
}

// Draw renders every point in index order.
func (m *PointManager) Draw(c Canvas) {
	for _, p := range m.points {
		p.Draw(c)
	}
}
