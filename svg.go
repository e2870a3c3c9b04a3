package diagram

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// LoadControlPointsSVG reads a control polygon from the first <polyline> (or,
// failing that, <polygon>) element of an SVG document. SVG's Y axis points
// down, so Y values are negated to give world coordinates with Y up.
func LoadControlPointsSVG(r io.Reader) ([]Vec2, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "diagram: parse svg")
	}
	els := root.FindAll("polyline")
	if len(els) == 0 {
		els = root.FindAll("polygon")
	}
	if len(els) == 0 {
		return nil, errors.New("diagram: svg has no polyline or polygon")
	}
	pts, err := parseSVGPoints(els[0].Attributes["points"])
	if err != nil {
		return nil, err
	}
	if len(pts) < MinControlPoints {
		return nil, errors.Errorf("diagram: svg polygon has %d points, want at least %d", len(pts), MinControlPoints)
	}
	return pts, nil
}

// LoadControlPointsSVGFile opens path and calls LoadControlPointsSVG.
func LoadControlPointsSVGFile(path string) ([]Vec2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "diagram: open svg %s", path)
	}
	defer f.Close()
	pts, err := LoadControlPointsSVG(f)
	return pts, errors.Wrapf(err, "diagram: %s", path)
}

// parseSVGPoints parses a points attribute: coordinates separated by commas
// and/or whitespace, taken in x, y pairs.
func parseSVGPoints(attr string) ([]Vec2, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("diagram: svg points: odd coordinate count %d", len(fields))
	}
	pts := make([]Vec2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "diagram: svg points: x %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "diagram: svg points: y %q", fields[i+1])
		}
		pts = append(pts, Vec2{x, -y})
	}
	return pts, nil
}
