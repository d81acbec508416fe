package scene

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/ascii-read/render"
)

// Tick is one frame of the script
type Tick struct {
	Renderables []render.Renderable
	// Revealed is the glyph added to the dialog this frame, 0 if none
	Revealed rune
	// Complete is set on the frame that reveals the last glyph
	Complete bool
}

// Script plays the demo: one empty frame, then one frame per dialog glyph while a circle
// bounces across the canvas, then a tail where the circle keeps moving and the finished
// dialog lingers for a while
type Script struct {
	width  int
	height int

	text     []rune
	revealed int
	box      render.DialogBox

	circle     render.Circle
	circleCell render.Cell
	speed      float64
	vx, vy     float64

	tailFrames int
	linger     int
	tail       int

	started bool
}

// NewScript prepares the script for a width x height canvas
func NewScript(cfg Config, width, height int) (*Script, error) {
	box, err := cfg.Dialog.Box()
	if err != nil {
		return nil, err
	}
	col, err := render.ParseHex(cfg.Circle.Color)
	if err != nil {
		return nil, errors.Wrap(err, "circle")
	}

	return &Script{
		width:      width,
		height:     height,
		text:       []rune(box.Text),
		box:        box,
		circle:     render.Circle{X: cfg.Circle.X, Y: cfg.Circle.Y, Radius: cfg.Circle.Radius},
		circleCell: render.CellFromColor(col),
		speed:      cfg.Circle.Speed,
		vx:         cfg.Circle.Speed,
		vy:         cfg.Circle.Speed,
		tailFrames: cfg.Tail.Frames,
		linger:     cfg.Tail.Linger,
	}, nil
}

// Frames returns the total number of ticks the script produces
func (s *Script) Frames() int {
	return 1 + len(s.text) + s.tailFrames
}

// Next returns the renderables for the next frame; false once the script is over
func (s *Script) Next() (Tick, bool) {
	if !s.started {
		s.started = true
		return Tick{}, true
	}

	if s.revealed < len(s.text) {
		s.step()
		r := s.text[s.revealed]
		s.revealed++
		return Tick{
			Renderables: []render.Renderable{
				render.FillCircle(s.circle, s.circleCell),
				render.Dialog(s.dialog()),
			},
			Revealed: r,
			Complete: s.revealed == len(s.text),
		}, true
	}

	if s.tail < s.tailFrames {
		s.step()
		rs := []render.Renderable{render.FillCircle(s.circle, s.circleCell)}
		if s.tail < s.linger {
			rs = append(rs, render.Dialog(s.dialog()))
		}
		s.tail++
		return Tick{Renderables: rs}, true
	}

	return Tick{}, false
}

// Circle returns the circle's current position
func (s *Script) Circle() render.Circle {
	return s.circle
}

func (s *Script) dialog() render.DialogBox {
	box := s.box
	box.Text = string(s.text[:s.revealed])
	return box
}

// step bounces off the far edges once the center passes them and off the near edges on contact
func (s *Script) step() {
	if int(s.circle.X) > s.width {
		s.vx = -s.speed
	}
	if int(s.circle.Y) > s.height {
		s.vy = -s.speed
	}
	if s.circle.X <= 0 {
		s.vx = s.speed
	}
	if s.circle.Y <= 0 {
		s.vy = s.speed
	}

	s.circle.X += s.vx
	s.circle.Y += s.vy
}
