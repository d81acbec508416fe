package terminal

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// CopyRaw streams a captured ANSI dump to dst, translating "\n" to "\r\n"
// Raw mode disables output post-processing, so bare line feeds would not return the carriage
func CopyRaw(dst io.Writer, src io.Reader) error {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)

	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read dump")
		}
		if ch == '\n' {
			w.WriteString("\r\n")
			continue
		}
		w.WriteRune(ch)
	}

	return errors.Wrap(w.Flush(), "write dump")
}
