package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSV(t *testing.T) {
	h, s, v := Color{255, 0, 0}.HSV()
	assert.InDelta(t, 0, h, 1e-9)
	assert.InDelta(t, 1, s, 1e-9)
	assert.InDelta(t, 1, v, 1e-9)

	assert.Equal(t, Color{0, 255, 0}, ColorFromHSV(120, 1, 1))
	assert.Equal(t, Color{0, 0, 0}, ColorFromHSV(200, 0.5, 0))
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range sampleColors {
		got := ColorFromHSV(c.HSV())
		assert.InDelta(t, int(c.R), int(got.R), 1, "color %v", c)
		assert.InDelta(t, int(c.G), int(got.G), 1, "color %v", c)
		assert.InDelta(t, int(c.B), int(got.B), 1, "color %v", c)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", Color{255, 128, 0}, false},
		{"#000000", Color{0, 0, 0}, false},
		{"#fff", Color{255, 255, 255}, false},
		{"ff8000", Color{}, true},
		{"#12345", Color{}, true},
		{"#gg0000", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Color{255, 128, 0}.Hex())

	for _, c := range sampleColors {
		got, err := ParseHex(c.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
