package scene

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/ascii-read/render"
)

// Player drives a Script against a Canvas until the script ends or ctx is done
type Player struct {
	Script *Script
	Canvas *render.Canvas

	// Present shows the queued frame, Canvas.Display when nil
	Present func() error

	// OnReveal is called with every glyph the dialog gains
	OnReveal func(r rune)

	// OnComplete is called once the whole dialog text is shown
	OnComplete func()
}

// Run plays every remaining tick and returns how many frames were presented
func (p Player) Run(ctx context.Context) (int, error) {
	present := p.Present
	if present == nil {
		present = p.Canvas.Display
	}

	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			slog.Debug("playback interrupted", "frames", frames)
			return frames, nil
		}

		tick, ok := p.Script.Next()
		if !ok {
			return frames, nil
		}

		for _, r := range tick.Renderables {
			p.Canvas.Push(r)
		}
		if tick.Revealed != 0 && p.OnReveal != nil {
			p.OnReveal(tick.Revealed)
		}
		if tick.Complete && p.OnComplete != nil {
			p.OnComplete()
		}

		if err := present(); err != nil {
			return frames, err
		}
		frames++
	}
}
