// effect_shaper.go - "Octave" waveshaper/colorant effect

package main

import (
	"math"
	"sync/atomic"
)

// ShaperMode selects which colorant the shaper applies. Not a true
// octave shifter, per spec §4.5 — the name is inherited from the UI
// control it used to sit behind.
type ShaperMode int

const (
	ShaperHigher ShaperMode = iota
	ShaperLower
)

// ShaperEffect is the "octave" effect, per spec §4.5. Grounded on
// audio_lut.go's fastTanh lookup table for the higher mode's soft clip,
// and on the teacher's one-pole smoothing idiom used throughout
// audio_chip.go's filter code for the lower mode.
type ShaperEffect struct {
	mode ShaperMode

	blendBits atomic.Uint64

	leftState, rightState float64
}

// NewShaperEffect returns a shaper in higher mode with blend 0
// (pass-through) until SetBlend is called.
func NewShaperEffect() *ShaperEffect {
	e := &ShaperEffect{mode: ShaperHigher}
	e.SetBlend(0)
	return e
}

func (e *ShaperEffect) effectName() string { return "octave" }

// SetSampleRate is a no-op: neither shaper mode is sample-rate
// dependent, per spec §4.5.
func (e *ShaperEffect) SetSampleRate(sampleRate float64) {}

// SetMode selects higher or lower colorant.
func (e *ShaperEffect) SetMode(mode ShaperMode) { e.mode = mode }

// SetBlend sets the dry/wet blend, clamped to [0,1].
func (e *ShaperEffect) SetBlend(blend float64) {
	blend = clampF64(blend, 0, 1)
	e.blendBits.Store(math.Float64bits(blend))
}

// Process applies the configured shaper mode per channel and crossfades
// with dry by blend.
func (e *ShaperEffect) Process(in StereoSample) StereoSample {
	blend := math.Float64frombits(e.blendBits.Load())

	var wetL, wetR float64
	switch e.mode {
	case ShaperHigher:
		wetL = float64(fastTanh(float32(ShaperHigherDriveGain*in.L))) * ShaperHigherMakeup
		wetR = float64(fastTanh(float32(ShaperHigherDriveGain*in.R))) * ShaperHigherMakeup
	case ShaperLower:
		e.leftState = e.leftState*ShaperLowerOldWeight + in.L*ShaperLowerNewWeight
		e.rightState = e.rightState*ShaperLowerOldWeight + in.R*ShaperLowerNewWeight
		wetL = e.leftState
		wetR = e.rightState
	}

	return StereoSample{
		L: (1-blend)*in.L + blend*wetL,
		R: (1-blend)*in.R + blend*wetR,
	}
}

// Reset zeroes the lower-mode one-pole state.
func (e *ShaperEffect) Reset() {
	e.leftState = 0
	e.rightState = 0
}
