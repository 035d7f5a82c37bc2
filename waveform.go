// waveform.go - Stateless waveform generators for the synth engine

package main

import "math"

// Waveform identifies an oscillator's shape. It is a closed, tagged
// variant per spec §9's guidance for a fixed waveform set: a plain enum
// with a switch in generate, no per-shape interface indirection.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// ParseWaveform maps a case-insensitive name to a Waveform. Unknown
// names fall back to WaveSquare per spec §4.10/§6.
func ParseWaveform(name string) Waveform {
	switch lowerASCII(name) {
	case "sine":
		return WaveSine
	case "square":
		return WaveSquare
	case "saw", "sawtooth":
		return WaveSaw
	case "triangle", "tri":
		return WaveTriangle
	default:
		return WaveSquare
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// generate advances *phase by freqHz/sampleRate (wrapped into [0,1)) and
// returns the waveform's value at the pre-advance phase, in [-1, 1].
// No band-limiting is applied — spec §4.1 accepts the resulting aliasing
// as "vintage" character, matching the teacher's own un-band-limited
// square/triangle/noise generators.
func (w Waveform) generate(freqHz, sampleRate float64, phase *float64) float64 {
	p := *phase

	var out float64
	switch w {
	case WaveSine:
		out = float64(fastSin(float32(p * twoPi)))
	case WaveSquare:
		if p < 0.5 {
			out = 1
		} else {
			out = -1
		}
	case WaveSaw:
		out = 2*p - 1
	case WaveTriangle:
		out = 4*math.Abs(p-0.5) - 1
	default:
		out = 0
	}

	if sampleRate > 0 {
		p += freqHz / sampleRate
		p -= math.Floor(p)
	}
	*phase = p

	return out
}
