// voice.go - Dual-oscillator voice core: drift LFO, detune, pitch bend

package main

import "math"

// ActiveNote is one triggered note, per spec §3. The most recently
// inserted note is the currently sounding pitch (monophonic with
// last-note-priority); the slice only exists for correct note-off
// bookkeeping, matching spec's "polyphony tracking exists only for
// correct note-off bookkeeping and UI state".
type ActiveNote struct {
	FreqHz      float64
	DetuneCents float64
}

// SecondaryOscSettings configures oscillator 2, per spec §3.
type SecondaryOscSettings struct {
	Enabled      bool
	Mix          float64 // [0,1]
	DetuneCents  float64 // >=0
	OctaveOffset int     // [-2,+2]
}

// Voice holds the oscillator/LFO state for the single currently-sounding
// pitch. Grounded on audio_chip.go's Channel hot-path fields (frequency,
// phase, cache-line-style field grouping by access frequency) but
// generalised from 4 hardware-register channels to one dual-oscillator
// voice driven by cents-based detune/pitch-bend math (spec §4.7).
type Voice struct {
	// Hot fields, touched every sample.
	primaryPhase   float64
	secondaryPhase float64
	lfoPhase       float64

	frequency   float64 // currently sounding pitch, 0 if none
	noteDetune  float64 // cents, randomised per trigger
	pitchBendCt float64 // cents, from SetPitchBend

	// Configuration, touched only on parameter updates.
	primaryWave   Waveform
	secondaryWave Waveform
	secondary     SecondaryOscSettings

	driftRateHz  float64
	driftAmtCts  float64
	driftJitter  float64
}

// NewVoice returns a voice with the spec's default oscillator settings.
func NewVoice() *Voice {
	return &Voice{
		primaryWave:   WaveSquare,
		secondaryWave: WaveSquare,
		driftRateHz:   DefaultDriftRateHz,
		driftAmtCts:   DefaultDriftAmountCts,
		driftJitter:   DefaultDriftJitterCts,
	}
}

// resetPhases zeroes both oscillator phases; called when the first note
// of a previously-silent engine is triggered (spec §4.8).
func (v *Voice) resetPhases() {
	v.primaryPhase = 0
	v.secondaryPhase = 0
}

// randomizeLFOPhase draws a fresh LFO starting phase; called alongside
// resetPhases so drift doesn't always start at the same point.
func (v *Voice) randomizeLFOPhase(rng randSource) {
	v.lfoPhase = rng.Float64()
}

// next produces one dual-oscillator sample at the given envelope level
// and sample rate, per spec §4.7. Returns 0 without touching oscillator
// state if frequency is 0 or envelopeLevel is 0.
func (v *Voice) next(envelopeLevel, sampleRate float64) float64 {
	if v.frequency <= 0 || envelopeLevel <= 0 {
		return 0
	}

	lfo := math.Sin(twoPi * v.lfoPhase)
	if sampleRate > 0 {
		v.lfoPhase += v.driftRateHz / sampleRate
		v.lfoPhase -= math.Floor(v.lfoPhase)
	}

	totalCents := v.noteDetune + lfo*v.driftAmtCts + v.pitchBendCt
	modFreq := v.frequency * math.Pow(2, totalCents/1200)

	primary := v.primaryWave.generate(modFreq, sampleRate, &v.primaryPhase)

	var secondary float64
	mix := 0.0
	if v.secondary.Enabled && v.secondary.Mix > 0 {
		mix = v.secondary.Mix
		secDetune := v.secondary.DetuneCents
		if secDetune < 0 {
			secDetune = 0
		}
		secFreq := modFreq * math.Pow(2, secDetune/1200) * math.Pow(2, float64(v.secondary.OctaveOffset))
		secondary = v.secondaryWave.generate(secFreq, sampleRate, &v.secondaryPhase)
	}

	sample := primary*(1-mix) + secondary*mix
	return sample * envelopeLevel
}

// configureSecondary normalises and applies the secondary oscillator
// settings, per spec §4.8's configure_secondary policy: mix clamps to
// [0,1], detune clamps to >=0, octave clamps to [-2,+2]; disabling
// zeroes the secondary phase so re-enabling starts clean.
func (v *Voice) configureSecondary(enabled bool, mix, detuneCents float64, octaveOffset int) {
	v.secondary.Enabled = enabled
	v.secondary.Mix = clampF64(mix, 0, 1)
	v.secondary.DetuneCents = maxF64(detuneCents, 0)
	v.secondary.OctaveOffset = clampInt(octaveOffset, SecondaryOctaveMin, SecondaryOctaveMax)
	if !enabled {
		v.secondaryPhase = 0
	}
}

// setPitchBend maps a raw MIDI-style bend value to cents, per spec §4.8:
// raw>=0 -> raw/8191, raw<0 -> raw/8192, scaled by ±100 cents.
func (v *Voice) setPitchBend(raw int) {
	raw = clampInt(raw, PitchBendMin, PitchBendMax)
	var ratio float64
	if raw >= 0 {
		ratio = float64(raw) / float64(PitchBendMax)
	} else {
		ratio = float64(raw) / float64(-PitchBendMin)
	}
	v.pitchBendCt = ratio * PitchBendMaxCents
}

// randSource is satisfied by *rand.Rand; kept as an interface so tests
// can supply a deterministic source without importing math/rand in
// every call site (spec §9: RNG used only on the control thread).
type randSource interface {
	Float64() float64
}
