package main

import "testing"

func TestWaveformGenerateStaysInRange(t *testing.T) {
	waves := []Waveform{WaveSine, WaveSquare, WaveSaw, WaveTriangle}
	for _, w := range waves {
		phase := 0.0
		for i := 0; i < 10000; i++ {
			v := w.generate(440, 44100, &phase)
			if v < -1 || v > 1 {
				t.Fatalf("waveform %d: value %v out of [-1,1] at step %d", w, v, i)
			}
			if phase < 0 || phase >= 1 {
				t.Fatalf("waveform %d: phase %v out of [0,1) at step %d", w, phase, i)
			}
		}
	}
}

func TestParseWaveformFallsBackToSquare(t *testing.T) {
	cases := map[string]Waveform{
		"sine":     WaveSine,
		"SINE":     WaveSine,
		"square":   WaveSquare,
		"saw":      WaveSaw,
		"sawtooth": WaveSaw,
		"triangle": WaveTriangle,
		"tri":      WaveTriangle,
		"bogus":    WaveSquare,
		"":         WaveSquare,
	}
	for name, want := range cases {
		if got := ParseWaveform(name); got != want {
			t.Errorf("ParseWaveform(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestWaveformZeroSampleRateHoldsPhase(t *testing.T) {
	phase := 0.25
	WaveSine.generate(440, 0, &phase)
	if phase != 0.25 {
		t.Errorf("phase advanced with sampleRate=0: got %v", phase)
	}
}
