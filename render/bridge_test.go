package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorTcellRoundTrip(t *testing.T) {
	for _, c := range sampleColors {
		assert.Equal(t, c, TcellToColor(ColorToTcell(c)))
	}
	assert.Equal(t, Black, TcellToColor(tcell.ColorDefault))
}

func TestScreenPresenter(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(4, 2)

	c := NewCanvas(4, 2, WithFrameDelay(0))
	marker := Cell{Rune: 'Z', Fg: Yellow, Bg: Blue}
	c.Push(FillRectangle(RectRaw(3, 1, 1, 1), marker, 1))
	require.NoError(t, c.PresentTo(ScreenPresenter{Screen: screen}))

	cells, w, h := screen.GetContents()
	require.Equal(t, 4, w)
	require.Equal(t, 2, h)

	base := CellFromColor(Color{})
	first := cells[0]
	require.NotEmpty(t, first.Runes)
	assert.Equal(t, base.Rune, first.Runes[0])
	fg, bg, _ := first.Style.Decompose()
	assert.Equal(t, ColorToTcell(base.Fg), fg)
	assert.Equal(t, ColorToTcell(base.Bg), bg)

	last := cells[1*w+3]
	require.NotEmpty(t, last.Runes)
	assert.Equal(t, 'Z', last.Runes[0])
	fg, bg, _ = last.Style.Decompose()
	assert.Equal(t, Yellow, TcellToColor(fg))
	assert.Equal(t, Blue, TcellToColor(bg))
}
