package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ascii-read/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "assets/scene1.jpg", cfg.Image)
	assert.Equal(t, 96, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameDelay())
	assert.Equal(t, "You are in a dark dungeon, what do you do?", cfg.Dialog.Text)
	assert.Equal(t, 82.0, cfg.Dialog.Width)
	assert.Equal(t, 5.0, cfg.Dialog.Height)
	assert.Equal(t, 35.0, cfg.Dialog.Position)
	assert.Equal(t, 5.0, cfg.Circle.Radius)
	assert.Equal(t, 2.0, cfg.Circle.Speed)
	assert.Equal(t, 1000, cfg.Tail.Frames)
	assert.Equal(t, 200, cfg.Tail.Linger)
	require.NoError(t, cfg.Validate())

	box, err := cfg.Dialog.Box()
	require.NoError(t, err)
	assert.Equal(t, render.NewDialogBox(cfg.Dialog.Text, 82, 5, 35), box)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 40
frame_delay_ms = 0

[dialog]
text = "hi"

[tail]
linger = 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Zero(t, cfg.FrameDelay())
	assert.Equal(t, "hi", cfg.Dialog.Text)
	assert.Equal(t, 82.0, cfg.Dialog.Width)
	assert.Equal(t, 1000, cfg.Tail.Frames)
	assert.Equal(t, 3, cfg.Tail.Linger)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"Unknown key", "widht = 3\n", "widht"},
		{"Unknown nested key", "[circle]\nradious = 3\n", "circle.radious"},
		{"Bad color", "[circle]\ncolor = \"blue\"\n", "circle"},
		{"Negative size", "width = -1\n", "negative"},
		{"Negative delay", "frame_delay_ms = -5\n", "frame_delay_ms"},
		{"Negative tail", "[tail]\nframes = -1\n", "tail"},
		{"Syntax", "width = \n", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDialogAutoWidth(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"ab\nabcd", 4},
		{"日本", 4},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			box, err := DialogConfig{Text: tt.text, Color: "#fff"}.Box()
			require.NoError(t, err)
			assert.Equal(t, tt.want, box.Width)
			assert.Equal(t, render.Color{R: 255, G: 255, B: 255}, box.TextColor)
		})
	}

	_, err := DialogConfig{Text: "x", Color: "nope"}.Box()
	assert.Error(t, err)
}
