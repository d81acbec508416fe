package main

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/ascii-read/asset"
	"github.com/lixenwraith/ascii-read/render"
	"github.com/lixenwraith/ascii-read/scene"
	"github.com/lixenwraith/ascii-read/terminal"
)

// loadScene resolves the config file and flag overrides
func loadScene(opts Options) (scene.Config, error) {
	cfg := scene.DefaultConfig()
	if opts.Config != "" {
		var err error
		if cfg, err = scene.LoadConfig(opts.Config); err != nil {
			return scene.Config{}, err
		}
	}

	if opts.Image != "" {
		cfg.Image = opts.Image
	}
	if opts.Fit {
		w, h := terminal.Size()
		// Last row is left for the parked cursor
		cfg.Width, cfg.Height = w, max(h-1, 1)
	}
	return cfg, nil
}

// newCanvas decodes the backdrop at the configured size
func newCanvas(cfg scene.Config, out io.Writer, mode terminal.ColorMode) (*render.Canvas, error) {
	colors, err := asset.LoadJPEG(cfg.Image, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	slog.Debug("canvas ready", "width", cfg.Width, "height", cfg.Height, "color", mode.String())
	return render.NewCanvasFromColors(colors,
		render.WithOutput(out),
		render.WithFrameDelay(cfg.FrameDelay()),
		render.WithColorMode(mode),
	), nil
}
