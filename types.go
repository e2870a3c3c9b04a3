package diagram

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Commonly used colors. The palette matches the default diagram theme.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorTransparent = Color{}
	ColorCurve       = Color{0.306, 0.804, 0.769, 1} // #4ecdc4
	ColorControl     = Color{1, 0.420, 0.420, 1}     // #ff6b6b
	ColorHighlight   = Color{1, 0.902, 0.427, 1}     // #ffe66d
)

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)" and
// "rgba(r,g,b,a)" notations. Channel values in rgb()/rgba() are 0-255 and
// alpha is 0-1.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s[5:len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s[4:len(s)-1], 3)
	}
	return Color{}, errors.Errorf("diagram: unsupported color %q", s)
}

func parseHexColor(h string) (Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, errors.Errorf("diagram: bad hex color %q", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "diagram: bad hex color %q", h)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func parseFuncColor(body string, n int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return Color{}, errors.Errorf("diagram: expected %d color components, got %d", n, len(parts))
	}
	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, errors.Wrapf(err, "diagram: color component %d", i)
		}
		if i < 3 {
			f /= 255
		}
		vals[i] = f
	}
	return Color{vals[0], vals[1], vals[2], vals[3]}, nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level palettes.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rect is an axis-aligned rectangle. In screen space the origin is at the
// top-left with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Cursor is the pointer style a host should display.
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

// EventType identifies a kind of diagram event.
type EventType uint8

const (
	EventTChange       EventType = iota // the curve parameter t changed
	EventPointsChanged                  // control points were dragged, added or removed
	EventPlay                           // playback started
	EventPause                          // playback paused
	EventReset                          // playback reset to t = 0
)
