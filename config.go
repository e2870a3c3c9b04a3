package diagram

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// GridConfig is the YAML form of a Grid.
type GridConfig struct {
	Type         string  `yaml:"type"`
	Size         float64 `yaml:"size"`
	SubGrid      bool    `yaml:"subGrid,omitempty"`
	SubDivisions int     `yaml:"subDivisions,omitempty"`
	ShowOrigin   bool    `yaml:"showOrigin,omitempty"`
}

// Config describes a diagram scene: canvas size, coordinate ranges, what is
// drawn, playback and the initial control points. It is read from YAML.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`

	XRange       [2]float64 `yaml:"xRange"`
	YRange       [2]float64 `yaml:"yRange"`
	TickInterval float64    `yaml:"tickInterval"`

	Grid GridConfig `yaml:"grid"`

	ShowGrid         bool `yaml:"showGrid"`
	ShowAxes         bool `yaml:"showAxes"`
	ShowControlLines bool `yaml:"showControlLines"`
	ShowConstruction bool `yaml:"showConstruction"`
	ShowMovingPoint  bool `yaml:"showMovingPoint"`

	CurveColor        string `yaml:"curveColor"`
	ControlPointColor string `yaml:"controlPointColor"`
	Background        string `yaml:"background"`

	Duration      float64 `yaml:"duration"`
	Easing        string  `yaml:"easing"`
	ConstantSpeed bool    `yaml:"constantSpeed,omitempty"`
	Autoplay      bool    `yaml:"autoplay,omitempty"`
	T             float64 `yaml:"t,omitempty"`

	// ControlPoints are world-space [x, y] pairs. Values may be numbers or
	// numeric strings.
	ControlPoints [][]any `yaml:"controlPoints,omitempty"`
}

// DefaultConfig returns an 800x600 scene over [-10, 10]² with the default
// cubic.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Padding:      40,
		XRange:       [2]float64{-10, 10},
		YRange:       [2]float64{-10, 10},
		TickInterval: 1,
		Grid: GridConfig{
			Type:         "lines",
			Size:         50,
			SubDivisions: 5,
		},
		ShowGrid:          true,
		ShowAxes:          true,
		ShowControlLines:  true,
		ShowConstruction:  true,
		ShowMovingPoint:   true,
		CurveColor:        "#4ecdc4",
		ControlPointColor: "#ff6b6b",
		Background:        "#1a1a2e",
		Duration:          DefaultDuration,
		Easing:            "linear",
	}
}

// LoadConfig reads a YAML config. Keys absent from the file keep their
// DefaultConfig values. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "diagram: read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "diagram: parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "diagram: config %s", path)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "diagram: mkdir %s", filepath.Dir(path))
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "diagram: marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "diagram: write config %s", path)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Padding < 0 || 2*c.Padding >= float64(min(c.Width, c.Height)) {
		return errors.Errorf("padding %g does not fit a %dx%d canvas", c.Padding, c.Width, c.Height)
	}
	if c.XRange[0] >= c.XRange[1] || c.YRange[0] >= c.YRange[1] {
		return errors.Errorf("empty range x=%v y=%v", c.XRange, c.YRange)
	}
	if c.TickInterval < 0 {
		return errors.Errorf("tickInterval %g is negative", c.TickInterval)
	}
	if c.Grid.Size != 0 && c.Grid.Size < MinGridSpacing {
		return errors.Errorf("grid size %g is below %g pixels", c.Grid.Size, MinGridSpacing)
	}
	if _, ok := ParseGridType(c.Grid.Type); !ok {
		return errors.Errorf("unknown grid type %q", c.Grid.Type)
	}
	if c.Easing != "" && !HasEasing(c.Easing) {
		return errors.Errorf("unknown easing %q", c.Easing)
	}
	if c.T < 0 || c.T > 1 {
		return errors.Errorf("t %g outside [0, 1]", c.T)
	}
	for _, s := range []string{c.CurveColor, c.ControlPointColor, c.Background} {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	pts, err := c.Points()
	if err != nil {
		return err
	}
	if len(pts) != 0 && (len(pts) < MinControlPoints || len(pts) > MaxControlPoints) {
		return errors.Errorf("%d control points, want %d to %d", len(pts), MinControlPoints, MaxControlPoints)
	}
	return nil
}

// Points decodes ControlPoints.
func (c Config) Points() ([]Vec2, error) {
	out := make([]Vec2, 0, len(c.ControlPoints))
	for i, pair := range c.ControlPoints {
		if len(pair) != 2 {
			return nil, errors.Errorf("control point %d: want [x, y], got %d values", i, len(pair))
		}
		x, err := cast.ToFloat64E(pair[0])
		if err != nil {
			return nil, errors.Wrapf(err, "control point %d: x", i)
		}
		y, err := cast.ToFloat64E(pair[1])
		if err != nil {
			return nil, errors.Wrapf(err, "control point %d: y", i)
		}
		out = append(out, Vec2{x, y})
	}
	return out, nil
}

// BackgroundColor returns the parsed background, or opaque black if it does
// not parse.
func (c Config) BackgroundColor() Color {
	col, err := ParseColor(c.Background)
	if err != nil {
		return Color{A: 1}
	}
	return col
}

// Options converts the display and playback fields. Colors that fail to
// parse keep their defaults.
func (c Config) Options() Options {
	o := DefaultOptions()
	o.ShowGrid = c.ShowGrid
	o.ShowAxes = c.ShowAxes
	o.ShowControlLines = c.ShowControlLines
	o.ShowConstruction = c.ShowConstruction
	o.ShowMovingPoint = c.ShowMovingPoint
	if col, err := ParseColor(c.CurveColor); err == nil {
		o.CurveColor = col
	}
	if col, err := ParseColor(c.ControlPointColor); err == nil {
		o.ControlPointColor = col
	}
	o.Duration = c.Duration
	o.Easing = c.Easing
	o.ConstantSpeed = c.ConstantSpeed
	return o
}

// NewDiagram builds a diagram from the config: the coordinate system is
// fitted to the canvas, the grid configured, control points placed (the
// default cubic if none are set) and t applied. Autoplay starts playback.
func (c Config) NewDiagram() (*BezierDiagram, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "diagram: config")
	}
	cs := NewCoordinateSystem()
	cs.XRange = Range{Min: c.XRange[0], Max: c.XRange[1]}
	cs.YRange = Range{Min: c.YRange[0], Max: c.YRange[1]}
	if c.TickInterval > 0 {
		cs.TickInterval = Vec2{c.TickInterval, c.TickInterval}
	}
	cs.FitToCanvas(float64(c.Width), float64(c.Height), c.Padding)

	pts, _ := c.Points()
	if len(pts) == 0 {
		pts = DefaultControlPoints(cs.XRange, cs.YRange)
	}
	d := NewBezierDiagram(cs, pts, c.Options())

	g := d.Grid()
	g.Type, _ = ParseGridType(c.Grid.Type)
	if c.Grid.Size > 0 {
		g.Size = c.Grid.Size
	}
	g.ShowSubGrid = c.Grid.SubGrid
	if c.Grid.SubDivisions > 0 {
		g.SubDivisions = c.Grid.SubDivisions
	}
	g.ShowOrigin = c.Grid.ShowOrigin

	if c.T > 0 {
		d.SetT(c.T)
	}
	if c.Autoplay {
		d.Play()
	}
	return d, nil
}
