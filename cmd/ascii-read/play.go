package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ascii-read/audio"
	"github.com/lixenwraith/ascii-read/render"
	"github.com/lixenwraith/ascii-read/scene"
	"github.com/lixenwraith/ascii-read/terminal"
)

const (
	backendANSI  = "ansi"
	backendTcell = "tcell"
)

func runPlay(ctx context.Context, opts Options) error {
	if opts.Backend != backendANSI && opts.Backend != backendTcell {
		return errors.Errorf("unknown backend %q (use %s or %s)", opts.Backend, backendANSI, backendTcell)
	}

	cfg, err := loadScene(opts)
	if err != nil {
		return err
	}

	canvas, err := newCanvas(cfg, os.Stdout, terminal.ParseColorMode(opts.Color))
	if err != nil {
		return err
	}

	script, err := scene.NewScript(cfg, canvas.Width(), canvas.Height())
	if err != nil {
		return err
	}

	tw := audio.NewTypewriter()
	if opts.Sound {
		// Audio is optional; keep playing without it
		if err := tw.Initialize(); err != nil {
			slog.Warn("audio unavailable", "error", err)
		}
	}
	defer tw.Cleanup()

	player := scene.Player{
		Script:     script,
		Canvas:     canvas,
		OnReveal:   tw.Click,
		OnComplete: tw.Bell,
	}

	if opts.Backend == backendTcell {
		return playTcell(ctx, player)
	}
	return playANSI(ctx, player, opts)
}

// playANSI draws through the diff writer on the process terminal
func playANSI(ctx context.Context, player scene.Player, opts Options) error {
	sess, err := terminal.Open(terminal.SessionOptions{
		Output:    os.Stdout,
		AltScreen: opts.AltScreen,
		ParkRow:   player.Canvas.Height() + 1,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	frames, err := player.Run(ctx)
	slog.Debug("playback finished", "backend", backendANSI, "frames", frames)
	return err
}

// playTcell hands frames to a tcell screen and stops on q, Esc or Ctrl-C
func playTcell(ctx context.Context, player scene.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchQuitKeys(screen, cancel)

	presenter := render.ScreenPresenter{Screen: screen}
	player.Present = func() error {
		return player.Canvas.PresentTo(presenter)
	}

	frames, err := player.Run(ctx)
	slog.Debug("playback finished", "backend", backendTcell, "frames", frames)
	return err
}

func watchQuitKeys(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if ok && isQuitKey(key) {
			cancel()
			return
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
