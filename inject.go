package diagram

type pointerEventKind uint8

const (
	pointerMove pointerEventKind = iota
	pointerPress
	pointerRelease
	pointerLeave
)

// syntheticPointerEvent is one injected pointer event in screen coordinates.
type syntheticPointerEvent struct {
	kind pointerEventKind
	pos  Vec2
}

// InjectMove queues a pointer move to (x, y). Queued events are consumed one
// per Update, before playback advances.
func (d *BezierDiagram) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: pointerMove, pos: Vec2{x, y}})
}

// InjectPress queues a move to (x, y) followed by a press there. Consumes two
// frames.
func (d *BezierDiagram) InjectPress(x, y float64) {
	d.InjectMove(x, y)
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: pointerPress, pos: Vec2{x, y}})
}

// InjectRelease queues a release.
func (d *BezierDiagram) InjectRelease() {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: pointerRelease})
}

// InjectLeave queues the pointer leaving the surface.
func (d *BezierDiagram) InjectLeave() {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: pointerLeave})
}

// InjectDrag queues a full drag: press at from, frames-2 interpolated moves,
// a final move to to and a release. The press itself takes two frames, so the
// sequence consumes frames+2 frames. Minimum frames is 2.
func (d *BezierDiagram) InjectDrag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		p := from.Lerp(to, float64(i)/float64(steps+1))
		d.InjectMove(p.X, p.Y)
	}
	d.InjectMove(to.X, to.Y)
	d.InjectRelease()
}

// PendingInput returns the number of queued synthetic events.
func (d *BezierDiagram) PendingInput() int { return len(d.injectQueue) }

// processInjectedInput pops one event and feeds it through the regular
// pointer handlers. It reports whether an event was consumed so hosts can skip
// real input for that frame.
func (d *BezierDiagram) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	switch evt.kind {
	case pointerMove:
		d.HandleMouseMove(evt.pos)
	case pointerPress:
		d.HandleMouseDown(evt.pos)
	case pointerRelease:
		d.HandleMouseUp()
	case pointerLeave:
		d.HandleMouseLeave()
	}
	return true
}
