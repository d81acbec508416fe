package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

// drain streams s to completion and returns every left-channel sample
func drain(s beep.Streamer) []float64 {
	buf := make([][2]float64, 256)
	var out []float64
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestSineLength(t *testing.T) {
	got := drain(NewSine(440, 10*time.Millisecond, sampleRate))
	assert.Len(t, got, sampleRate.N(10*time.Millisecond))
	for _, v := range got {
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}
}

func TestEnvelopeShape(t *testing.T) {
	const total = 100 * time.Millisecond
	env := NewEnvelope(NewSine(1000, total, sampleRate), total, 10*time.Millisecond, 10*time.Millisecond, sampleRate)
	got := drain(env)

	assert.Len(t, got, sampleRate.N(total))
	assert.Zero(t, got[0], "attack starts silent")

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range got[from:to] {
			m = math.Max(m, math.Abs(v))
		}
		return m
	}
	n := len(got)
	assert.Greater(t, peak(n/2-100, n/2+100), 0.9, "sustain reaches full scale")
	assert.Less(t, peak(n-20, n), 0.05, "release fades out")
}

func TestBell(t *testing.T) {
	got := drain(NewBell(sampleRate, 1))
	n := sampleRate.N(bellDuration)
	assert.GreaterOrEqual(t, len(got), n)
	assert.LessOrEqual(t, len(got), n+512, "mixing may pad the final block")

	silent := drain(NewBell(sampleRate, 0))
	for _, v := range silent {
		assert.Zero(t, v)
	}
}
