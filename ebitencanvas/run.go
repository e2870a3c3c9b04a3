package ebitencanvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vveducation/diagram"
)

// tStep is how far the arrow keys move t.
const tStep = 0.01

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Background    diagram.Color
	ShowFPS       bool
	// ShowInfo prints the curve order, t and curve point in the bottom-left
	// corner.
	ShowInfo bool
}

// Game is an ebiten.Game driving one diagram: real pointer input (unless
// synthetic input is pending), keyboard shortcuts, Update and Draw.
//
//	Space        play / pause
//	R            reset
//	C            toggle construction lines
//	+ / -        add / remove a control point
//	Left, Right  step t
type Game struct {
	Diagram *diagram.BezierDiagram
	Config  RunConfig

	lastX, lastY int
	inside       bool
	cursor       ebiten.CursorShapeType
	fps          fpsOverlay
}

// NewGame returns a Game for d.
func NewGame(d *diagram.BezierDiagram, cfg RunConfig) *Game {
	return &Game{Diagram: d, Config: cfg, lastX: -1, lastY: -1, cursor: -1}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	d := g.Diagram
	if d.PendingInput() == 0 {
		g.handlePointer()
	}
	g.handleKeys()

	d.Update(1 / float64(ebiten.TPS()))

	if shape := CursorShape(d.Cursor()); shape != g.cursor {
		ebiten.SetCursorShape(shape)
		g.cursor = shape
	}
	if g.Config.ShowFPS {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *Game) handlePointer() {
	d := g.Diagram
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.Config.Width && y < g.Config.Height
	if !inside {
		if g.inside {
			d.HandleMouseLeave()
		}
		g.inside = false
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			d.HandleMouseUp()
		}
		return
	}
	g.inside = true

	pos := diagram.Vec(float64(x), float64(y))
	if x != g.lastX || y != g.lastY {
		d.HandleMouseMove(pos)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.HandleMouseDown(pos)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		d.HandleMouseUp()
	}
}

func (g *Game) handleKeys() {
	d := g.Diagram
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		d.TogglePlay()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		d.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		d.Options.ShowConstruction = !d.Options.ShowConstruction
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		d.AddControlPoint()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		d.RemoveControlPoint()
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		d.SetT(d.T() + tStep)
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		d.SetT(d.T() - tStep)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Config.Background.RGBA())
	w, h := float64(g.Config.Width), float64(g.Config.Height)
	g.Diagram.Draw(New(screen), w, h)

	if g.Config.ShowInfo {
		st := g.Diagram.State()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("n = %d  t = %.2f  B(t) = (%.2f, %.2f)", st.Order, st.T, st.CurvePoint.X, st.CurvePoint.Y),
			8, g.Config.Height-glyphH-8)
	}
	if g.Config.ShowFPS {
		g.fps.draw(screen, g.Config.Width)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(int, int) (int, int) {
	return g.Config.Width, g.Config.Height
}

// Run opens a window and runs d until the window is closed.
func Run(d *diagram.BezierDiagram, cfg RunConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(NewGame(d, cfg))
}

// fpsOverlay shows FPS and TPS in the top-right corner, refreshed about every
// half second.
type fpsOverlay struct {
	since float64
	text  string
}

func (f *fpsOverlay) update(dt float64) {
	f.since += dt
	if f.since < 0.5 && f.text != "" {
		return
	}
	f.since = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsOverlay) draw(screen *ebiten.Image, width int) {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	x := float32(width - 100)
	vector.FillRect(screen, x, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, f.text, int(x)+2, 0)
}
