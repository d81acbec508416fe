package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ascii-read/terminal"
)

const (
	// DefaultFrameDelay paces Display to roughly 60 frames per second
	DefaultFrameDelay = 16 * time.Millisecond

	// colorTolerance is the RGB distance under which consecutive cells share one SGR pair
	colorTolerance = 20.0
)

// Presenter receives composited frames in place of the ANSI diff writer
type Presenter interface {
	Present(frame Frame) error
}

// Option configures a Canvas
type Option func(*Canvas)

// WithOutput sets the stream Display writes to
func WithOutput(w io.Writer) Option {
	return func(c *Canvas) {
		c.out = w
	}
}

// WithFrameDelay sets the pause after each displayed frame; zero disables pacing
func WithFrameDelay(d time.Duration) Option {
	return func(c *Canvas) {
		c.frameDelay = max(d, 0)
	}
}

// WithColorMode selects truecolor or 256-color SGR output
func WithColorMode(mode terminal.ColorMode) Option {
	return func(c *Canvas) {
		c.colorMode = mode
	}
}

// snapshot is the last frame written; valid is false until the first Display
type snapshot struct {
	frame Frame
	valid bool
}

// Canvas owns a fixed-size base grid, a queue of overlays for the next frame,
// and the snapshot used to diff successive frames
// Not safe for concurrent use
type Canvas struct {
	base     Frame
	pending  []Renderable
	previous snapshot

	out        io.Writer
	colorMode  terminal.ColorMode
	frameDelay time.Duration
}

// NewCanvas creates a width x height canvas filled with the glyph for pure black
func NewCanvas(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		base:       NewFrame(width, height, CellFromColor(Color{})),
		out:        os.Stdout,
		frameDelay: DefaultFrameDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCanvasFromColors quantizes a row-major color grid into the base grid
// All rows must have equal length
func NewCanvasFromColors(grid [][]Color, opts ...Option) *Canvas {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	c := NewCanvas(width, height, opts...)
	for y, row := range grid {
		if len(row) != width {
			panic(fmt.Sprintf("render: ragged color grid: row %d has %d cells, want %d", y, len(row), width))
		}
		for x, col := range row {
			c.base.Cells[y*width+x] = CellFromColor(col)
		}
	}
	return c
}

// Width returns the number of columns
func (c *Canvas) Width() int {
	return c.base.Width
}

// Height returns the number of rows
func (c *Canvas) Height() int {
	return c.base.Height
}

// At returns the base cell at (x, y)
func (c *Canvas) At(x, y int) Cell {
	return c.base.At(x, y)
}

// Set replaces the base cell at (x, y); out-of-range is ignored
func (c *Canvas) Set(x, y int, cell Cell) {
	c.base.set(x, y, cell)
}

// Push queues r for the next frame
func (c *Canvas) Push(r Renderable) {
	c.pending = append(c.pending, r)
}

// Pending returns the number of queued renderables
func (c *Canvas) Pending() int {
	return len(c.pending)
}

// Previous returns a copy of the last displayed frame, if any
func (c *Canvas) Previous() (Frame, bool) {
	if !c.previous.valid {
		return Frame{}, false
	}
	return c.previous.frame.Clone(), true
}

// Composite returns the base grid with every pending renderable applied in push order
// Neither the base grid nor the queue is modified
func (c *Canvas) Composite() Frame {
	frame := c.base.Clone()
	for _, r := range c.pending {
		r.apply(&frame)
	}
	return frame
}

// Display composites, writes only the cells that changed since the last frame,
// then records the snapshot, clears the queue and sleeps for the frame delay
func (c *Canvas) Display() error {
	frame := c.Composite()

	w := terminal.NewWriter(c.out, c.colorMode)
	c.emit(w, frame)
	c.commit(frame)

	err := w.Flush()
	c.pace()
	if err != nil {
		return errors.Wrap(err, "flush frame")
	}
	return nil
}

// PresentTo composites and hands the frame to p instead of the ANSI writer
func (c *Canvas) PresentTo(p Presenter) error {
	frame := c.Composite()
	err := p.Present(frame)
	c.commit(frame)
	c.pace()
	if err != nil {
		return errors.Wrap(err, "present frame")
	}
	return nil
}

// emit writes the diff of frame against the snapshot
// Without a snapshot every cell is written
func (c *Canvas) emit(w *terminal.Writer, frame Frame) {
	prev := c.previous
	w.Home()

	for y := 0; y < frame.Height; y++ {
		var lastFg, lastBg Color
		styled := false

		row := y * frame.Width
		for x := 0; x < frame.Width; x++ {
			cell := frame.Cells[row+x]
			if prev.valid && prev.frame.Cells[row+x] == cell {
				continue
			}

			w.CursorPos(x, y)
			if styled && cell.Fg.Distance(lastFg) < colorTolerance && cell.Bg.Distance(lastBg) < colorTolerance {
				w.Rune(cell.Rune)
				continue
			}

			w.Reset()
			w.Fg(cell.Fg.RGB())
			w.Bg(cell.Bg.RGB())
			w.Rune(cell.Rune)
			lastFg, lastBg, styled = cell.Fg, cell.Bg, true
		}

		w.Reset()
		w.Newline()
	}
}

// commit stores frame as the snapshot and drops the queue
func (c *Canvas) commit(frame Frame) {
	if !c.previous.valid {
		c.previous.frame = Frame{Width: frame.Width, Height: frame.Height, Cells: make([]Cell, len(frame.Cells))}
		c.previous.valid = true
	}
	copy(c.previous.frame.Cells, frame.Cells)

	clear(c.pending)
	c.pending = c.pending[:0]
}

func (c *Canvas) pace() {
	if c.frameDelay > 0 {
		time.Sleep(c.frameDelay)
	}
}
