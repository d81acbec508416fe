//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size returns the terminal size for stdout, falling back to 80x24
func Size() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w == 0 || h == 0 {
		return 80, 24
	}
	return w, h
}
