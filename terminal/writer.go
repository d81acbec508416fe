package terminal

import (
	"bufio"
	"io"
)

// Writer emits cursor, color and glyph sequences through a single buffered stream
// Nothing reaches the underlying writer until Flush
type Writer struct {
	w    *bufio.Writer
	mode ColorMode
}

// NewWriter wraps w with a frame-sized buffer
func NewWriter(w io.Writer, mode ColorMode) *Writer {
	return &Writer{
		w:    bufio.NewWriterSize(w, 65536),
		mode: mode,
	}
}

// Mode returns the color mode used for SGR sequences
func (w *Writer) Mode() ColorMode {
	return w.mode
}

// Home moves the cursor to the top-left corner
func (w *Writer) Home() {
	w.w.Write(csiHome)
}

// CursorPos positions the cursor (0-indexed input)
func (w *Writer) CursorPos(x, y int) {
	writeCursorPos(w.w, x, y)
}

// Reset clears all SGR styling
func (w *Writer) Reset() {
	w.w.Write(csiSGR0)
}

// Fg writes a complete foreground color sequence
func (w *Writer) Fg(c RGB) {
	if w.mode == ColorModeTrueColor {
		w.w.Write(csiFgRGB)
		writeRGBParams(w.w, c)
		return
	}
	w.w.Write(csiFg256)
	writeInt(w.w, int(RGBTo256(c)))
	w.w.WriteByte('m')
}

// Bg writes a complete background color sequence
func (w *Writer) Bg(c RGB) {
	if w.mode == ColorModeTrueColor {
		w.w.Write(csiBgRGB)
		writeRGBParams(w.w, c)
		return
	}
	w.w.Write(csiBg256)
	writeInt(w.w, int(RGBTo256(c)))
	w.w.WriteByte('m')
}

// Rune writes a single glyph, NUL is written as space
func (w *Writer) Rune(r rune) {
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		w.w.WriteByte(byte(r))
	} else {
		w.w.WriteRune(r)
	}
}

// Newline advances to the next line
func (w *Writer) Newline() {
	w.w.WriteByte('\n')
}

// WriteString writes s unmodified
func (w *Writer) WriteString(s string) {
	w.w.WriteString(s)
}

// Flush writes buffered output, returning the first write error encountered
func (w *Writer) Flush() error {
	return w.w.Flush()
}
