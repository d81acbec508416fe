package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ascii-read/terminal"
)

func replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Stream a dumped frame to the terminal in raw mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0])
		},
	}
}

func runReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open dump")
	}
	defer f.Close()

	sess, err := terminal.Open(terminal.SessionOptions{
		Output: os.Stdout,
		Raw:    terminal.IsTerminal(os.Stdin),
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	return terminal.CopyRaw(os.Stdout, f)
}
