package audio

import (
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and counts the samples that pass through it so
// the frame loop can show how far playback has got. Stream runs on the
// speaker goroutine; Position is safe to call from anywhere.
type Tap struct {
	Source beep.Streamer
	rate   beep.SampleRate
	played atomic.Int64
}

func NewTap(src beep.Streamer, rate beep.SampleRate) *Tap {
	return &Tap{Source: src, rate: rate}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.played.Add(int64(n))
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Samples returns how many samples have been streamed.
func (t *Tap) Samples() int {
	return int(t.played.Load())
}

// Position returns the playback time streamed so far.
func (t *Tap) Position() time.Duration {
	return t.rate.D(t.Samples())
}
