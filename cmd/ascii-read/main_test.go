package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 16), uint8(y * 32), 128, 255})
		}
	}
	imgPath := filepath.Join(dir, "backdrop.jpg")
	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, nil))
	require.NoError(t, f.Close())

	cfgPath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
width = 12
height = 6

[dialog]
text = "go"
width = 4
height = 1
position = 2
`), 0o644))

	return Options{Config: cfgPath, Image: imgPath, Color: "truecolor"}
}

func TestRunDump(t *testing.T) {
	opts := writeScene(t)

	var out bytes.Buffer
	require.NoError(t, runDump(opts, dumpOptions{}, &out))

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(out.String()), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Equal(t, 12, len([]rune(line)))
	}
	assert.Contains(t, out.String(), "\x1b[38;2;")

	out.Reset()
	require.NoError(t, runDump(opts, dumpOptions{Dialog: true}, &out))
	stripped := ansi.Strip(out.String())
	assert.Contains(t, stripped, "go")
	assert.Contains(t, stripped, "╭")
}

func TestRunDump256(t *testing.T) {
	opts := writeScene(t)
	opts.Color = "256"

	var out bytes.Buffer
	require.NoError(t, runDump(opts, dumpOptions{}, &out))
	assert.Contains(t, out.String(), "\x1b[38;5;")
	assert.NotContains(t, out.String(), "\x1b[38;2;")
}

func TestRunDumpMissingImage(t *testing.T) {
	opts := writeScene(t)
	opts.Image = filepath.Join(t.TempDir(), "missing.jpg")

	var out bytes.Buffer
	assert.Error(t, runDump(opts, dumpOptions{}, &out))
}

func TestLoadScene(t *testing.T) {
	cfg, err := loadScene(Options{})
	require.NoError(t, err)
	assert.Equal(t, 96, cfg.Width)

	opts := writeScene(t)
	cfg, err = loadScene(opts)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, opts.Image, cfg.Image)

	opts.Fit = true
	cfg, err = loadScene(opts)
	require.NoError(t, err)
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)
}

func TestRunPlayRejectsBackend(t *testing.T) {
	err := runPlay(context.Background(), Options{Backend: "sixel"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sixel")
}

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"Other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isQuitKey(tt.ev))
		})
	}
}

func TestRootCommandFlags(t *testing.T) {
	root := rootCmd()
	for _, name := range []string{"config", "image", "debug", "color", "fit"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"backend", "sound", "alt-screen"} {
		assert.NotNil(t, root.Flags().Lookup(name), name)
	}

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["dump"])
	assert.True(t, names["replay"])
}
