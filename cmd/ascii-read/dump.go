package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ascii-read/render"
	"github.com/lixenwraith/ascii-read/terminal"
)

type dumpOptions struct {
	Output string
	Dialog bool
}

func dumpCmd(opts *Options) *cobra.Command {
	var dopts dumpOptions

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write one full frame as ANSI escape sequences",
		Example: `  # Backdrop to a file
  ascii-read dump -o scene.ans

  # With the finished dialog, piped to a pager
  ascii-read dump --dialog -o - | less -R`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dopts.Output == "-" {
				return runDump(*opts, dopts, cmd.OutOrStdout())
			}

			f, err := os.Create(dopts.Output)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			if err := runDump(*opts, dopts, f); err != nil {
				f.Close()
				return err
			}
			return errors.Wrap(f.Close(), "close output")
		},
	}

	cmd.Flags().StringVarP(&dopts.Output, "output", "o", "-", "Output file ('-' for stdout)")
	cmd.Flags().BoolVar(&dopts.Dialog, "dialog", false, "Include the fully revealed dialog")
	return cmd
}

// runDump composites the backdrop (and optionally the dialog) and writes every cell once
func runDump(opts Options, dopts dumpOptions, out io.Writer) error {
	cfg, err := loadScene(opts)
	if err != nil {
		return err
	}
	cfg.FrameDelayMs = 0

	w := bufio.NewWriter(out)
	canvas, err := newCanvas(cfg, w, terminal.ParseColorMode(opts.Color))
	if err != nil {
		return err
	}

	if dopts.Dialog {
		box, err := cfg.Dialog.Box()
		if err != nil {
			return err
		}
		canvas.Push(render.Dialog(box))
	}

	if err := canvas.Display(); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write dump")
}
