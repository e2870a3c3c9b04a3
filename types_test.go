package diagram

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"#FF0000", Color{1, 0, 0, 1}},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
		{"rgb(255, 0, 255)", Color{1, 0, 1, 1}},
		{" rgba(0,0,255,0.5) ", Color{0, 0, 1, 0.5}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want.R, got.R, 1e-9, tt.in)
		assert.InDelta(t, tt.want.G, got.G, 1e-9, tt.in)
		assert.InDelta(t, tt.want.B, got.B, 1e-9, tt.in)
		assert.InDelta(t, tt.want.A, got.A, 1e-9, tt.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#gggggg", "rgb(1,2)", "rgba(1,2,3,x)"} {
		_, err := ParseColor(in)
		assert.Error(t, err, "ParseColor(%q)", in)
	}
	assert.Panics(t, func() { MustParseColor("nope") })
}

func TestColorRGBAPremultiplies(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 128, G: 0, B: 0, A: 128}, Color{1, 0, 0, 0.5}.RGBA())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, Color{2, 2, 2, 3}.RGBA(), "components clamp")
	assert.Equal(t, 0.4, ColorCurve.WithAlpha(0.4).A)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	assert.True(t, r.Contains(10, 20), "edges are inside")
	assert.False(t, r.Contains(31, 15))
	assert.Equal(t, Vec(20, 15), r.Center())
}
