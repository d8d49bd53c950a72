package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// oscillator streams a fixed-length sine wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newOscillator(freq float64, duration time.Duration) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: sampleRate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping so ticks start and end without clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  sampleRate.N(attack),
		releaseSamples: sampleRate.N(release),
		totalSamples:   sampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	if releaseStart < e.attackSamples {
		releaseStart = e.attackSamples
	}

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}
