// Package scene loads the demo configuration and scripts the frames played over the backdrop.
package scene

import (
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ascii-read/asset"
	"github.com/lixenwraith/ascii-read/render"
)

// Config describes one demo scene
type Config struct {
	// Image is the JPEG used as the backdrop
	Image string `toml:"image"`

	// Width and Height are the canvas size in cells
	Width  int `toml:"width"`
	Height int `toml:"height"`

	FrameDelayMs int `toml:"frame_delay_ms"`

	Dialog DialogConfig `toml:"dialog"`
	Circle CircleConfig `toml:"circle"`
	Tail   TailConfig   `toml:"tail"`
}

// DialogConfig is the typewriter panel
// Width <= 0 sizes the panel to the widest line of Text
type DialogConfig struct {
	Text     string  `toml:"text"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Position float64 `toml:"position"`
	XPad     float64 `toml:"x_pad"`
	YPad     float64 `toml:"y_pad"`
	Color    string  `toml:"color"`
}

// CircleConfig is the bouncing circle and its starting point
type CircleConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"`
	Color  string  `toml:"color"`
}

// TailConfig controls the frames played after the text is fully revealed
type TailConfig struct {
	Frames int `toml:"frames"`
	// Linger is how many tail frames still show the dialog
	Linger int `toml:"linger"`
}

// DefaultConfig returns the built-in scene
func DefaultConfig() Config {
	var cfg Config
	if _, err := toml.Decode(asset.DefaultSceneConfig, &cfg); err != nil {
		panic("scene: built-in config: " + err.Error())
	}
	return cfg
}

// LoadConfig reads a scene file on top of the defaults
// Keys the scene does not know are rejected
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid %s", path)
	}

	slog.Debug("scene config loaded", "path", path, "width", cfg.Width, "height", cfg.Height)
	return cfg, nil
}

// Validate checks ranges and color strings
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("canvas size %dx%d is negative", c.Width, c.Height)
	}
	if c.FrameDelayMs < 0 {
		return errors.Errorf("frame_delay_ms %d is negative", c.FrameDelayMs)
	}
	if c.Tail.Frames < 0 || c.Tail.Linger < 0 {
		return errors.New("tail frames and linger must not be negative")
	}
	if c.Circle.Radius < 0 {
		return errors.Errorf("circle radius %v is negative", c.Circle.Radius)
	}
	if _, err := render.ParseHex(c.Dialog.Color); err != nil {
		return errors.Wrap(err, "dialog")
	}
	if _, err := render.ParseHex(c.Circle.Color); err != nil {
		return errors.Wrap(err, "circle")
	}
	return nil
}

// FrameDelay converts the configured delay
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// Box builds the dialog with its full text
func (d DialogConfig) Box() (render.DialogBox, error) {
	col, err := render.ParseHex(d.Color)
	if err != nil {
		return render.DialogBox{}, errors.Wrap(err, "dialog")
	}

	width := d.Width
	if width <= 0 {
		width = float64(TextWidth(d.Text))
	}

	return render.DialogBox{
		Text:      d.Text,
		Width:     width,
		Height:    d.Height,
		Position:  d.Position,
		XPad:      d.XPad,
		YPad:      d.YPad,
		TextColor: col,
	}, nil
}

// TextWidth returns the display width of the widest line
func TextWidth(text string) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}
