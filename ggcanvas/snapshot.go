package ggcanvas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vveducation/diagram"
)

// Render draws d onto a fresh width×height canvas filled with bg.
func Render(d *diagram.BezierDiagram, width, height int, bg diagram.Color) *Canvas {
	c := NewSized(width, height, bg)
	d.Draw(c, float64(width), float64(height))
	return c
}

// RenderPNG renders d and writes it to path.
func RenderPNG(d *diagram.BezierDiagram, width, height int, bg diagram.Color, path string) error {
	c := Render(d, width, height, bg)
	if err := c.ctx.SavePNG(path); err != nil {
		return errors.Wrapf(err, "diagram: write %s", path)
	}
	return nil
}

// Snapshotter implements diagram.Snapshotter by rendering the diagram to a
// timestamped PNG in Dir.
type Snapshotter struct {
	Dir           string
	Width, Height int
	Background    diagram.Color

	// Now stamps file names. nil uses time.Now.
	Now func() time.Time

	written []string
}

// Snapshot renders d to <Dir>/<stamp>_<label>.png.
func (s *Snapshotter) Snapshot(d *diagram.BezierDiagram, label string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "diagram: mkdir %s", s.Dir)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	stamp := now().Format("20060102_150405")
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := RenderPNG(d, s.Width, s.Height, s.Background, path); err != nil {
		return err
	}
	s.written = append(s.written, path)
	return nil
}

// Written returns the paths of every snapshot written so far.
func (s *Snapshotter) Written() []string { return s.written }

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
