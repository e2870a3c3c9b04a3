package diagram

import "math"

// GridType selects how grid intersections are rendered.
type GridType uint8

const (
	GridLines GridType = iota
	GridDots
	GridCrosses
)

// ParseGridType maps "lines", "dots" or "crosses" to a GridType. Anything else
// yields GridLines and false.
func ParseGridType(s string) (GridType, bool) {
	switch s {
	case "lines":
		return GridLines, true
	case "dots":
		return GridDots, true
	case "crosses":
		return GridCrosses, true
	}
	return GridLines, false
}

// MinGridSpacing is the smallest pixel distance between grid lines. Finer
// spacings draw nothing, which bounds the line count by the canvas size.
const MinGridSpacing = 2.0

const (
	gridDotRadius  = 2
	gridCrossSize  = 4
	gridOriginSize = 6
)

// Grid is a background grid in screen space, spaced Size pixels apart and
// aligned to an offset (usually the coordinate system origin).
type Grid struct {
	Type      GridType
	Size      float64
	Color     Color
	LineWidth float64

	ShowSubGrid  bool
	SubDivisions int
	SubGridColor Color
	ShowOrigin   bool
	OriginColor  Color
}

// NewGrid returns a line grid of 50px cells with five subdivisions.
func NewGrid() *Grid {
	return &Grid{
		Type:         GridLines,
		Size:         50,
		Color:        ColorWhite.WithAlpha(0.08),
		LineWidth:    1,
		SubDivisions: 5,
		SubGridColor: ColorWhite.WithAlpha(0.03),
		OriginColor:  ColorWhite.WithAlpha(0.3),
	}
}

// gridStops returns the positions offset+k*step inside [0, extent). A step
// below MinGridSpacing yields none.
func gridStops(extent, offset, step float64) []float64 {
	if !(step >= MinGridSpacing) || math.IsInf(step, 1) || extent <= 0 {
		return nil
	}
	start := math.Mod(offset, step)
	if start < 0 {
		start += step
	}
	n := int(math.Ceil((extent - start) / step))
	out := make([]float64, 0, n)
	for k := 0; ; k++ {
		p := start + float64(k)*step
		if p >= extent {
			break
		}
		out = append(out, p)
	}
	return out
}

// Lines returns the vertical and horizontal segments of the main grid and, if
// ShowSubGrid is set, of the sub grid.
func (g *Grid) Lines(width, height, offsetX, offsetY float64) (major, minor []Segment) {
	major = gridSegments(width, height, offsetX, offsetY, g.Size)
	if g.ShowSubGrid && g.SubDivisions > 1 {
		minor = gridSegments(width, height, offsetX, offsetY, g.Size/float64(g.SubDivisions))
	}
	return major, minor
}

func gridSegments(width, height, ox, oy, step float64) []Segment {
	var segs []Segment
	for _, x := range gridStops(width, ox, step) {
		segs = append(segs, Segment{Vec2{x, 0}, Vec2{x, height}})
	}
	for _, y := range gridStops(height, oy, step) {
		segs = append(segs, Segment{Vec2{0, y}, Vec2{width, y}})
	}
	return segs
}

// Nodes returns the grid intersections inside the canvas, column by column.
func (g *Grid) Nodes(width, height, offsetX, offsetY float64) []Vec2 {
	xs := gridStops(width, offsetX, g.Size)
	ys := gridStops(height, offsetY, g.Size)
	out := make([]Vec2, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, Vec2{x, y})
		}
	}
	return out
}

// Draw renders the grid onto c.
func (g *Grid) Draw(c Canvas, width, height, offsetX, offsetY float64) {
	switch g.Type {
	case GridDots:
		for _, p := range g.Nodes(width, height, offsetX, offsetY) {
			c.FillCircle(p, gridDotRadius, g.Color)
		}
	case GridCrosses:
		for _, p := range g.Nodes(width, height, offsetX, offsetY) {
			c.StrokeLine(Vec2{p.X - gridCrossSize, p.Y}, Vec2{p.X + gridCrossSize, p.Y}, g.LineWidth, g.Color)
			c.StrokeLine(Vec2{p.X, p.Y - gridCrossSize}, Vec2{p.X, p.Y + gridCrossSize}, g.LineWidth, g.Color)
		}
	default:
		major, minor := g.Lines(width, height, offsetX, offsetY)
		for _, s := range minor {
			c.StrokeLine(s.From, s.To, g.LineWidth*0.5, g.SubGridColor)
		}
		for _, s := range major {
			c.StrokeLine(s.From, s.To, g.LineWidth, g.Color)
		}
	}
	if g.ShowOrigin {
		c.FillCircle(Vec2{offsetX, offsetY}, gridOriginSize/2, g.OriginColor)
	}
}
