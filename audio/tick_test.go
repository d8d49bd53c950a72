package audio

import (
	"testing"
	"time"
)

// TestOscillatorStreamsBoundedSamples verifies sine generation without a speaker
func TestOscillatorStreamsBoundedSamples(t *testing.T) {
	osc := newOscillator(440.0, 50*time.Millisecond)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d not mono-duplicated: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorEndsAfterDuration verifies the stream terminates
func TestOscillatorEndsAfterDuration(t *testing.T) {
	duration := 10 * time.Millisecond
	osc := newOscillator(880.0, duration)
	total := sampleRate.N(duration)

	samples := make([][2]float64, 512)
	streamed := 0
	for {
		n, ok := osc.Stream(samples)
		streamed += n
		if !ok {
			break
		}
	}
	if streamed != total {
		t.Errorf("Expected exactly %d samples, got %d", total, streamed)
	}
}

// TestEnvelopeShapesAttackAndRelease verifies fade-in and fade-out
func TestEnvelopeShapesAttackAndRelease(t *testing.T) {
	duration := 20 * time.Millisecond
	attack := 5 * time.Millisecond
	release := 5 * time.Millisecond

	env := newEnvelope(newOscillator(440.0, duration), duration, attack, release)

	total := sampleRate.N(duration)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	// First sample is silent, attack ramps up from zero
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	// Last samples fade toward zero
	tail := samples[n-1][0]
	if tail < -0.05 || tail > 0.05 {
		t.Errorf("Expected near-silent final sample, got %f", tail)
	}
}

// TestSoundManagerSafeWithoutInitialize verifies silent degradation
func TestSoundManagerSafeWithoutInitialize(t *testing.T) {
	sm := NewSoundManager()

	// No speaker: every call is a safe no-op
	sm.PlayTick(0)
	sm.PlayTick(5)
	sm.SetVolume(0.5)
	sm.Cleanup()
}

func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager()

	sm.SetVolume(2.5)
	if sm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", sm.volume)
	}
	sm.SetVolume(-1)
	if sm.volume != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", sm.volume)
	}
}
