package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{-5, "0"},
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{255, "255"},
		{999, "999"},
		{1000, "1000"},
		{123456, "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			writeInt(w, tt.in)
			w.Flush()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCursorPosIsOneIndexed(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeCursorPos(w, 0, 0)
	writeCursorPos(w, 9, 4)
	w.Flush()
	assert.Equal(t, "\x1b[1;1H\x1b[5;10H", buf.String())
}
