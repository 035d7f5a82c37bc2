// engine_constants.go - Tunable defaults and hard limits for the synth engine

/*
██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// ------------------------------------------------------------------------------
// Sample rate and timing limits
// ------------------------------------------------------------------------------
const (
	MinSampleRate     = 100.0   // Hz, spec floor
	DefaultSampleRate = 44100.0 // Hz, conventional default
)

// ------------------------------------------------------------------------------
// Note / frequency limits
// ------------------------------------------------------------------------------
const (
	MinNoteFreq = 0.0     // frequencies at/below this are rejected by TriggerNote
	MaxNoteFreq = 20000.0 // Hz
	NoteEpsilon = 1e-3    // |Δf| tolerance for matching a note in TriggerNoteOff
)

// ------------------------------------------------------------------------------
// ADSR defaults and limits
// ------------------------------------------------------------------------------
const (
	DefaultAttack  = 0.1
	DefaultDecay   = 0.2
	DefaultSustain = 0.7
	DefaultRelease = 0.3
)

// ------------------------------------------------------------------------------
// Drift LFO defaults
// ------------------------------------------------------------------------------
const (
	DefaultDriftRateHz    = 0.35
	DefaultDriftAmountCts = 4.0
	DefaultDriftJitterCts = 3.0
)

// ------------------------------------------------------------------------------
// Pitch bend
// ------------------------------------------------------------------------------
const (
	PitchBendMin      = -8192
	PitchBendMax      = 8191
	PitchBendMaxCents = 100.0 // ±1 semitone
)

// ------------------------------------------------------------------------------
// Secondary oscillator limits
// ------------------------------------------------------------------------------
const (
	SecondaryOctaveMin = -2
	SecondaryOctaveMax = 2
)

// ------------------------------------------------------------------------------
// Biquad low-pass limits
// ------------------------------------------------------------------------------
const (
	LowPassMinCutoffHz  = 20.0
	LowPassMinQ         = 0.1
	LowPassMaxQ         = 10.0
	LowPassNyquistScale = 0.45 // cutoff clamps to 0.45 * Nyquist
)

// ------------------------------------------------------------------------------
// Delay limits
// ------------------------------------------------------------------------------
const (
	DelayMinTimeS     = 0.005
	DelayMaxTimeS     = 2.5
	DelayMaxFeedback  = 0.97
	DelayDefaultMaxS  = 2.5 // buffer sizing ceiling used by NewDelayEffect
	DelayClampSample  = 2.0 // per-sample hard clamp, ± this value
)

// ------------------------------------------------------------------------------
// Shaper ("octave") defaults
// ------------------------------------------------------------------------------
const (
	ShaperHigherDriveGain = 2.0
	ShaperHigherMakeup    = 0.8
	ShaperLowerOldWeight  = 0.8
	ShaperLowerNewWeight  = 0.2
)

// ------------------------------------------------------------------------------
// Ring buffer
// ------------------------------------------------------------------------------
const DefaultRingCapacityFloor = 2048

// ------------------------------------------------------------------------------
// MIDI
// ------------------------------------------------------------------------------
const (
	MIDIA4Note   = 69
	MIDIA4Freq   = 440.0
	MIDIVolumeCC = 7
	midiMinFreq  = 80.0
	midiMaxFreq  = 12000.0
)

const twoPi = 2 * math.Pi

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
