package diagram

import (
	"math"
	"testing"
)

func newTestSystem() *CoordinateSystem {
	cs := NewCoordinateSystem()
	cs.SetOrigin(400, 300)
	cs.SetScale(40)
	return cs
}

func TestWorldToScreen(t *testing.T) {
	cs := newTestSystem()
	p := cs.WorldToScreen(1, 1)
	if !approxEqual(p.X, 440, epsilon) || !approxEqual(p.Y, 260, epsilon) {
		t.Errorf("WorldToScreen(1, 1) = %v, want (440, 260)", p)
	}
	p = cs.WorldToScreen(0, 0)
	if !approxEqual(p.X, 400, epsilon) || !approxEqual(p.Y, 300, epsilon) {
		t.Errorf("WorldToScreen(0, 0) = %v, want origin (400, 300)", p)
	}
}

func TestWorldYPointsUp(t *testing.T) {
	cs := newTestSystem()
	up := cs.WorldToScreen(0, 2)
	down := cs.WorldToScreen(0, -2)
	if up.Y >= down.Y {
		t.Errorf("world y=2 at screen y=%f should be above world y=-2 at %f", up.Y, down.Y)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	cs := newTestSystem()
	cs.SetScaleXY(25, 60)
	for _, w := range []Vec2{{0, 0}, {1.5, -2}, {-7, 3.25}, {10, 10}} {
		s := cs.WorldToScreen(w.X, w.Y)
		back := cs.ScreenToWorld(s.X, s.Y)
		if !vecApprox(back, w, 1e-9) {
			t.Errorf("round trip of %v = %v", w, back)
		}
	}
}

func TestScreenToWorldRoundTripExtremeScales(t *testing.T) {
	tests := []struct {
		sx, sy float64
		w      Vec2
	}{
		{1e-7, 1e-7, Vec(1e8, 2e8)},
		{2.6e-7, 2.6e-7, Vec(5e8, -5e8)},
		{1e-9, 1e6, Vec(-3e9, 1e-4)},
		{1e7, 1e7, Vec(1e-6, -2e-6)},
	}
	for _, tt := range tests {
		cs := newTestSystem()
		cs.SetScaleXY(tt.sx, tt.sy)
		s := cs.WorldToScreen(tt.w.X, tt.w.Y)
		back := cs.ScreenToWorld(s.X, s.Y)
		tol := 1e-6 * math.Max(1, math.Max(math.Abs(tt.w.X), math.Abs(tt.w.Y)))
		if !vecApprox(back, tt.w, tol) {
			t.Errorf("scale (%g, %g): round trip of %v = %v", tt.sx, tt.sy, tt.w, back)
		}
	}
}

func TestScreenToWorldZeroScaleOneAxis(t *testing.T) {
	cs := newTestSystem()
	cs.SetScaleXY(0, 20)
	p := cs.ScreenToWorld(123, 260)
	if p.X != 123 || p.Y != 2 {
		t.Errorf("ScreenToWorld = %v, want (123, 2)", p)
	}
}

func TestMatrixCacheInvalidation(t *testing.T) {
	cs := newTestSystem()
	_ = cs.Matrix()
	cs.SetOrigin(100, 100)
	m := cs.Matrix()
	if m[4] != 100 || m[5] != 100 {
		t.Errorf("matrix translation = (%f, %f), want (100, 100)", m[4], m[5])
	}
	if m[0] != 40 || m[3] != -40 {
		t.Errorf("matrix scale = (%f, %f), want (40, -40)", m[0], m[3])
	}
}

func TestScreenToWorldZeroScale(t *testing.T) {
	cs := newTestSystem()
	cs.SetScale(0)
	p := cs.ScreenToWorld(123, 456)
	if p.X != 123 || p.Y != 456 {
		t.Errorf("ScreenToWorld with zero scale = %v, want identity (123, 456)", p)
	}
}

func TestPointsToScreenAndBack(t *testing.T) {
	cs := newTestSystem()
	world := []Vec2{{1, 1}, {-1, 2}}
	screen := cs.PointsToScreen(world)
	if len(screen) != 2 || !vecApprox(screen[0], Vec(440, 260), epsilon) {
		t.Fatalf("PointsToScreen = %v", screen)
	}
	back := cs.PointsToWorld(screen)
	for i := range world {
		if !vecApprox(back[i], world[i], 1e-9) {
			t.Errorf("PointsToWorld[%d] = %v, want %v", i, back[i], world[i])
		}
	}
}

func TestFitToCanvas(t *testing.T) {
	cs := NewCoordinateSystem()
	cs.FitToCanvas(800, 600, 40)
	tr := cs.Transform()
	if !approxEqual(tr.ScaleX, 26, epsilon) || tr.ScaleX != tr.ScaleY {
		t.Errorf("scale = (%f, %f), want uniform 26", tr.ScaleX, tr.ScaleY)
	}
	if !vecApprox(tr.Origin, Vec(400, 300), epsilon) {
		t.Errorf("origin = %v, want (400, 300)", tr.Origin)
	}

	// Corners of the ranges stay inside the padded area.
	tl := cs.WorldToScreen(-10, 10)
	br := cs.WorldToScreen(10, -10)
	if tl.X < 40 || tl.Y < 40 || br.X > 760 || br.Y > 560 {
		t.Errorf("fitted corners %v %v leave the padded canvas", tl, br)
	}
}

func TestFitToCanvasIgnoresDegenerateInput(t *testing.T) {
	cs := newTestSystem()
	cs.FitToCanvas(50, 50, 40)
	if tr := cs.Transform(); tr.ScaleX != 40 || tr.Origin != Vec(400, 300) {
		t.Errorf("transform changed to %+v for a canvas smaller than its padding", tr)
	}
}

func TestTicks(t *testing.T) {
	cs := newTestSystem()
	ticks := cs.Ticks(800, 600)

	if len(ticks.X) != 18 {
		t.Fatalf("len(X ticks) = %d, want 18", len(ticks.X))
	}
	if len(ticks.Y) != 14 {
		t.Fatalf("len(Y ticks) = %d, want 14", len(ticks.Y))
	}

	first := ticks.X[0]
	if first.Pos != 440 || first.Label != "1" {
		t.Errorf("first X tick = %+v, want pos 440 label 1", first)
	}
	if neg := ticks.X[9]; neg.Pos != 360 || neg.Label != "-1" {
		t.Errorf("first negative X tick = %+v, want pos 360 label -1", neg)
	}
	if ticks.Y[0].Pos != 260 || ticks.Y[0].Label != "1" {
		t.Errorf("first Y tick = %+v, want pos 260 label 1", ticks.Y[0])
	}
	if ticks.Y[7].Pos != 340 || ticks.Y[7].Label != "-1" {
		t.Errorf("first negative Y tick = %+v, want pos 340 label -1", ticks.Y[7])
	}

	for _, tk := range append(ticks.X, ticks.Y...) {
		if tk.Pos <= TickMargin {
			t.Errorf("tick %+v inside the left/top margin", tk)
		}
		if tk.Axis == AxisX && tk.Pos >= 800-TickMargin {
			t.Errorf("tick %+v inside the right margin", tk)
		}
		if tk.Axis == AxisY && tk.Pos >= 600-TickMargin {
			t.Errorf("tick %+v inside the bottom margin", tk)
		}
		if tk.Label == "0" || tk.Label == "-0" {
			t.Errorf("tick at the origin: %+v", tk)
		}
	}
}

func TestTicksNonPositiveStep(t *testing.T) {
	cs := newTestSystem()
	cs.TickInterval = Vec2{0, -1}
	ticks := cs.Ticks(800, 600)
	if len(ticks.X) != 0 || len(ticks.Y) != 0 {
		t.Errorf("ticks = %+v, want none", ticks)
	}
}

func TestTicksSkipDenseAxes(t *testing.T) {
	cs := newTestSystem()
	cs.SetScaleXY(1e-3, 1e-7)
	ticks := cs.Ticks(800, 600)
	if len(ticks.X) != 0 || len(ticks.Y) != 0 {
		t.Errorf("got %d X and %d Y ticks at sub-pixel spacing, want none", len(ticks.X), len(ticks.Y))
	}

	// A coarser interval brings the X ticks back at 100px.
	cs.TickInterval = Vec2{1e5, 1}
	ticks = cs.Ticks(800, 600)
	if len(ticks.X) != 6 || len(ticks.Y) != 0 {
		t.Errorf("got %d X and %d Y ticks, want 6 and 0", len(ticks.X), len(ticks.Y))
	}
	if ticks.X[0].Label != "100000" {
		t.Errorf("first X label = %q, want 100000", ticks.X[0].Label)
	}

	cs.SetScaleXY(1, 1e-7)
	cs.TickInterval = Vec2{MinTickSpacing, 1}
	if n := len(cs.Ticks(800, 600).X); n == 0 {
		t.Error("ticks exactly MinTickSpacing apart should be kept")
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{3, "3"},
		{-2, "-2"},
		{0.5, "0.5"},
		{negZero(), "0"},
	}
	for _, tt := range tests {
		if got := formatTick(tt.v); got != tt.want {
			t.Errorf("formatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestAxes(t *testing.T) {
	cs := newTestSystem()
	a := cs.Axes(800, 600)
	if a.X.From != Vec(0, 300) || a.X.To != Vec(800, 300) {
		t.Errorf("X axis = %+v", a.X)
	}
	if a.Y.From != Vec(400, 600) || a.Y.To != Vec(400, 0) {
		t.Errorf("Y axis = %+v", a.Y)
	}
	if a.XArrow[0] != Vec(800, 300) || a.XArrow[1] != Vec(792, 296) {
		t.Errorf("X arrow = %v", a.XArrow)
	}
	if a.YArrow[0] != Vec(400, 0) || a.YArrow[2] != Vec(404, 8) {
		t.Errorf("Y arrow = %v", a.YArrow)
	}
}

func TestCoordinateSystemDraw(t *testing.T) {
	cs := newTestSystem()
	rc := &recordingCanvas{}
	cs.Draw(rc, 800, 600)
	// 2 axes plus one line per tick.
	if rc.lines != 2+18+14 {
		t.Errorf("lines = %d, want 34", rc.lines)
	}
	if rc.polys != 2 {
		t.Errorf("arrow heads = %d, want 2", rc.polys)
	}
	if len(rc.texts) != 32 {
		t.Errorf("labels = %d, want 32", len(rc.texts))
	}

	rc = &recordingCanvas{}
	cs.ShowTicks = false
	cs.ShowArrows = false
	cs.Draw(rc, 800, 600)
	if rc.lines != 2 || rc.polys != 0 || len(rc.texts) != 0 {
		t.Errorf("bare axes drew lines=%d polys=%d texts=%d", rc.lines, rc.polys, len(rc.texts))
	}
}
