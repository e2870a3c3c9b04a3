package diagram

// --- Handler registry ---

type tHandler struct {
	id uint32
	fn func(t float64)
}

type pointsHandler struct {
	id uint32
	fn func(points []Vec2)
}

type signalHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	tChange       []tHandler
	pointsChanged []pointsHandler
	play          []signalHandler
	pause         []signalHandler
	reset         []signalHandler
	nextID        uint32
}

// CallbackHandle allows removing a registered diagram callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTChange:
		h.reg.tChange = removeTHandler(h.reg.tChange, h.id)
	case EventPointsChanged:
		h.reg.pointsChanged = removePointsHandler(h.reg.pointsChanged, h.id)
	case EventPlay:
		h.reg.play = removeSignalHandler(h.reg.play, h.id)
	case EventPause:
		h.reg.pause = removeSignalHandler(h.reg.pause, h.id)
	case EventReset:
		h.reg.reset = removeSignalHandler(h.reg.reset, h.id)
	}
}

func removeTHandler(s []tHandler, id uint32) []tHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePointsHandler(s []pointsHandler, id uint32) []pointsHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointsHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeSignalHandler(s []signalHandler, id uint32) []signalHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = signalHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addSignal(list *[]signalHandler, event EventType, fn func()) CallbackHandle {
	r.nextID++
	*list = append(*list, signalHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// --- Emitters ---

// Emitters iterate over a snapshot so handlers may remove themselves.

func (r *handlerRegistry) emitT(t float64) {
	for _, h := range append([]tHandler(nil), r.tChange...) {
		h.fn(t)
	}
}

func (r *handlerRegistry) emitPoints(points []Vec2) {
	for _, h := range append([]pointsHandler(nil), r.pointsChanged...) {
		h.fn(append([]Vec2(nil), points...))
	}
}

func emitSignal(list []signalHandler) {
	for _, h := range append([]signalHandler(nil), list...) {
		h.fn()
	}
}

// --- Diagram-level registration ---

// OnTChange registers a callback fired whenever the curve parameter changes,
// by SetT or by playback.
func (d *BezierDiagram) OnTChange(fn func(t float64)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.tChange = append(d.handlers.tChange, tHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventTChange}
}

// OnPointsChanged registers a callback fired with the world-space control
// points after a drag ends or a point is added or removed. Each callback
// receives its own copy.
func (d *BezierDiagram) OnPointsChanged(fn func(points []Vec2)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointsChanged = append(d.handlers.pointsChanged, pointsHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventPointsChanged}
}

// OnPlay registers a callback fired when playback starts.
func (d *BezierDiagram) OnPlay(fn func()) CallbackHandle {
	return d.handlers.addSignal(&d.handlers.play, EventPlay, fn)
}

// OnPause registers a callback fired when playback pauses.
func (d *BezierDiagram) OnPause(fn func()) CallbackHandle {
	return d.handlers.addSignal(&d.handlers.pause, EventPause, fn)
}

// OnReset registers a callback fired when the diagram is reset.
func (d *BezierDiagram) OnReset(fn func()) CallbackHandle {
	return d.handlers.addSignal(&d.handlers.reset, EventReset, fn)
}
