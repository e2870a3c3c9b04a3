// Package diagram is the geometry and interaction core for interactive 2D
// teaching diagrams: Bézier curves, coordinate axes and grids, and draggable
// points.
//
// The core does no drawing of its own. Everything renders through the
// [Canvas] interface; [github.com/vveducation/diagram/ebitencanvas] draws
// into an Ebitengine window and [github.com/vveducation/diagram/ggcanvas]
// renders PNGs off-screen.
//
// # Curves
//
// A Bézier curve is just its control polygon, a []Vec2 of at least one
// point. [BezierPoint] and [DeCasteljau] evaluate it, [DeCasteljauLevels]
// exposes the construction, and [BezierDerivative], [BezierNormal],
// [BezierArcLength], [FindClosestT] and [SampleBezier] cover the rest:
//
//	pts := []diagram.Vec2{{0, 0}, {1, 2}, {3, 2}, {4, 0}}
//	mid := diagram.BezierPoint(pts, 0.5)
//	c := diagram.FindClosestT(pts, diagram.Vec(2, 3), 0)
//
// # Coordinates
//
// A [CoordinateSystem] maps world space (Y up) to screen space (Y down):
//
//	cs := diagram.NewCoordinateSystem()
//	cs.SetOrigin(400, 300)
//	cs.SetScale(40)
//	s := cs.WorldToScreen(1, 1) // (440, 260)
//
// # Interaction
//
// A [PointManager] turns pointer events into hover and drag state for a set
// of screen-space handles and reports drags to a [DragListener].
// [BezierDiagram] combines all of the above into a scene with playback of
// the curve parameter, events, synthetic input and JSON interaction scripts.
// The host calls [BezierDiagram.Update] and [BezierDiagram.Draw] once per
// frame; nothing in this package runs on its own timer.
package diagram
