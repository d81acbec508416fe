// Command ascii-read renders a JPEG backdrop as colored text and plays a short typewriter scene
// over it, redrawing only the cells that change between frames.
//
// Usage examples:
//
// # Play the built-in scene
// ./ascii-read
//
// # Play a custom scene sized to the terminal, with key clicks
// ./ascii-read --config scene.toml --fit --sound
//
// # Write one frame as ANSI and stream it back later
// ./ascii-read dump -o scene.ans
// ./ascii-read replay scene.ans
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ascii-read/terminal"
)

// Options holds flags shared by the commands
type Options struct {
	Config    string
	Image     string
	Debug     bool
	Color     string
	Backend   string
	Sound     bool
	Fit       bool
	AltScreen bool
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mASCII-READ CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := fang.Execute(context.Background(), rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:   "ascii-read",
		Short: "Render images as colored text with incremental redraw",
		Long: `ascii-read quantizes every pixel into a glyph from a density ramp with a
foreground/background pair, composites shapes and dialog boxes on top, and
redraws only the cells that changed since the previous frame.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logFile := setupLogging(opts.Debug); logFile != nil {
				cobra.OnFinalize(func() { logFile.Close() })
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.Config, "config", "c", "", "Scene TOML file (built-in scene if empty)")
	pf.StringVar(&opts.Image, "image", "", "Override the scene's backdrop JPEG")
	pf.BoolVarP(&opts.Debug, "debug", "d", false, "Write debug logs to "+logDir+"/"+logFileName)
	pf.StringVar(&opts.Color, "color", "auto", "Color mode: auto, truecolor, 256")
	pf.BoolVar(&opts.Fit, "fit", false, "Size the canvas to the terminal")

	f := root.Flags()
	f.StringVar(&opts.Backend, "backend", backendANSI, "Output backend: ansi or tcell")
	f.BoolVar(&opts.Sound, "sound", false, "Click for every revealed dialog glyph")
	f.BoolVar(&opts.AltScreen, "alt-screen", false, "Draw on the alternate screen (ansi backend)")

	root.AddCommand(dumpCmd(&opts), replayCmd())
	return root
}
