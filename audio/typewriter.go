package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"
	"unicode"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)

	clickDuration = 30 * time.Millisecond
	clickBaseFreq = 1800.0
	clickFreqStep = 60.0
	clickGain     = 0.25
	clickDecay    = 180.0

	bellVolume = 0.3
)

// Typewriter plays a short key click for every revealed dialog glyph
// All methods are no-ops until Initialize succeeds
type Typewriter struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewTypewriter creates an uninitialized typewriter
func NewTypewriter() *Typewriter {
	return &Typewriter{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (tw *Typewriter) Initialize() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(tw.mixer)
	tw.initialized = true
	slog.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup silences pending clicks
func (tw *Typewriter) Cleanup() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.initialized {
		return
	}

	speaker.Lock()
	tw.mixer.Clear()
	speaker.Unlock()
	tw.initialized = false
}

// Click queues the click for r; whitespace is silent
func (tw *Typewriter) Click(r rune) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.initialized || r == 0 || unicode.IsSpace(r) {
		return
	}

	streamer := beep.Take(sampleRate.N(clickDuration), NewClickGenerator(sampleRate, ClickFrequency(r)))
	speaker.Lock()
	tw.mixer.Add(streamer)
	speaker.Unlock()
}

// Bell queues the dialog-complete ding
func (tw *Typewriter) Bell() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.initialized {
		return
	}

	speaker.Lock()
	tw.mixer.Add(NewBell(sampleRate, bellVolume))
	speaker.Unlock()
}

// ClickFrequency varies pitch slightly per glyph so runs of text do not drone
func ClickFrequency(r rune) float64 {
	return clickBaseFreq + float64(r%7)*clickFreqStep
}

// ClickGenerator generates a decaying sine burst
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click generator
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, exponential tail
		envelope := math.Exp(-t * clickDecay)
		sample := clickGain * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
