// engine.go - Engine orchestration: voice, envelope, effect chain, tap

package main

import (
	"math"
	"math/rand"
)

// Engine is the single ownership domain for one synth voice's full
// signal path, per spec §5. The audio thread only ever calls
// NextSample; every other method is a control-thread operation.
// Grounded on audio_chip.go's SoundChip as the top-level per-voice
// owner, but narrowed from four hardware channels plus a register file
// to one dual-oscillator voice with an explicit Engine API.
type Engine struct {
	sampleRate float64

	voice    *Voice
	envelope *Envelope
	effects  *EffectChain

	tap *RingBuffer

	activeNotes []ActiveNote
	noteOn      bool

	rng *rand.Rand // control-thread only, per spec §9
}

// NewEngine returns an Engine configured for sampleRate with default
// oscillator, envelope and drift settings, and a tap ring buffer sized
// per spec §4.6.
func NewEngine(sampleRate float64) *Engine {
	sampleRate = clampF64(sampleRate, MinSampleRate, math.MaxFloat64)
	capacity := int(sampleRate * 0.5)
	if capacity < DefaultRingCapacityFloor {
		capacity = DefaultRingCapacityFloor
	}
	return &Engine{
		sampleRate: sampleRate,
		voice:      NewVoice(),
		envelope:   NewEnvelope(),
		effects:    NewEffectChain(),
		tap:        NewRingBuffer(capacity),
		rng:        rand.New(rand.NewSource(1)),
	}
}

// TriggerNote pushes a new active note and, if the engine was silent,
// resets oscillator phases and the envelope, per spec §4.8. Out-of-range
// frequencies (<=0 or >20000) are ignored.
func (e *Engine) TriggerNote(freqHz float64) {
	if freqHz <= MinNoteFreq || freqHz > MaxNoteFreq {
		return
	}

	wasSilent := len(e.activeNotes) == 0

	detune := (e.rng.Float64()*2 - 1) * e.voice.driftJitter
	note := ActiveNote{FreqHz: freqHz, DetuneCents: detune}
	e.activeNotes = append(e.activeNotes, note)

	e.voice.frequency = note.FreqHz
	e.voice.noteDetune = note.DetuneCents
	e.noteOn = true

	if wasSilent {
		e.voice.resetPhases()
		e.voice.randomizeLFOPhase(e.rng)
		e.envelope.Reset()
	}
}

// TriggerNoteOff removes the most recent active note matching freqHz
// (within NoteEpsilon). If freqHz is nil, all active notes are cleared.
// If no notes remain afterward, note_on clears. No-op if the note isn't
// present, per spec §4.8.
func (e *Engine) TriggerNoteOff(freqHz *float64) {
	if freqHz == nil {
		e.activeNotes = e.activeNotes[:0]
		e.noteOn = false
		return
	}

	for i := len(e.activeNotes) - 1; i >= 0; i-- {
		if math.Abs(e.activeNotes[i].FreqHz-*freqHz) < NoteEpsilon {
			e.activeNotes = append(e.activeNotes[:i], e.activeNotes[i+1:]...)
			break
		}
	}

	if len(e.activeNotes) == 0 {
		e.noteOn = false
		return
	}

	top := e.activeNotes[len(e.activeNotes)-1]
	e.voice.frequency = top.FreqHz
	e.voice.noteDetune = top.DetuneCents
}

// NextSample advances the envelope and voice by one sample, runs the
// result through the effect chain, pushes it to the tap, and returns it.
// Audio-thread only; never fails, never blocks, never allocates.
func (e *Engine) NextSample() StereoSample {
	level := e.envelope.Process(e.noteOn, e.sampleRate)
	s := e.voice.next(level, e.sampleRate)

	out := e.effects.Process(StereoSample{L: s, R: s})
	e.tap.Push(out.L, out.R)
	return out
}

// SetWaveform sets both the primary and secondary oscillator waveform.
func (e *Engine) SetWaveform(kind Waveform) {
	e.voice.primaryWave = kind
	e.voice.secondaryWave = kind
}

// SetSecondaryWaveform sets the secondary oscillator waveform only.
func (e *Engine) SetSecondaryWaveform(kind Waveform) {
	e.voice.secondaryWave = kind
}

// ConfigureSecondary normalises and applies the secondary oscillator
// settings, per spec §4.8.
func (e *Engine) ConfigureSecondary(enabled bool, mix, detuneCents float64, octaveOffset int) {
	e.voice.configureSecondary(enabled, mix, detuneCents, octaveOffset)
}

// SetPitchBend maps a raw MIDI-style bend value to cents, per spec
// §4.8/§4.9.
func (e *Engine) SetPitchBend(raw int) {
	e.voice.setPitchBend(raw)
}

// UpdateADSR replaces the envelope parameters. Negatives clamp to 0, per
// spec §4.8.
func (e *Engine) UpdateADSR(attackS, decayS, sustain, releaseS float64) {
	e.envelope.SetParams(attackS, decayS, sustain, releaseS)
}

// SetDrift sets the voice's drift LFO rate, amount and jitter, each
// clamped to >=0, per spec §4.8.
func (e *Engine) SetDrift(rateHz, amountCts, jitterCts float64) {
	e.voice.driftRateHz = maxF64(rateHz, 0)
	e.voice.driftAmtCts = maxF64(amountCts, 0)
	e.voice.driftJitter = maxF64(jitterCts, 0)
}

// AddEffect appends effect to the chain, per spec §4.8.
func (e *Engine) AddEffect(effect Effect) {
	e.effects.Add(effect)
}

// ClearEffects resets and removes every effect, per spec §4.8.
func (e *Engine) ClearEffects() {
	e.effects.Clear()
}

// ResetEffects resets every effect in place, preserving the chain, per
// spec §4.8.
func (e *Engine) ResetEffects() {
	e.effects.ResetEffects()
}

// SetLowPassCutoff applies hz to every low-pass effect in the chain, per
// spec §4.8.
func (e *Engine) SetLowPassCutoff(hz float64) {
	e.effects.SetLowPassCutoff(hz)
}

// GetLowPassCutoff returns the last applied low-pass cutoff, or 0 if
// none is active, per spec §4.8.
func (e *Engine) GetLowPassCutoff() float64 {
	return e.effects.GetLowPassCutoff()
}

// UpdateEffectParameters finds the first effect matching name (resolved
// through the case-insensitive synonym table) and applies params to it.
// Returns false if no effect of that kind is present, per spec §4.8.
func (e *Engine) UpdateEffectParameters(name string, params map[string]float64) bool {
	canon := effectSynonym(name)
	params = filterParams(canon, params)
	return e.effects.UpdateByName(name, func(eff Effect) bool {
		switch v := eff.(type) {
		case *LowPassEffect:
			if hz, ok := params["cutoff"]; ok {
				v.setCutoff(hz)
			}
			if q, ok := params["resonance"]; ok {
				v.SetResonance(q)
			}
			if mix, ok := params["mix"]; ok {
				v.SetMix(mix)
			}
		case *DelayEffect:
			if t, ok := params["time"]; ok {
				v.SetDelayTime(t)
			}
			if fb, ok := params["feedback"]; ok {
				v.SetFeedback(fb)
			}
			if mix, ok := params["mix"]; ok {
				v.SetMix(mix)
			}
		case *ShaperEffect:
			if blend, ok := params["blend"]; ok {
				v.SetBlend(blend)
			}
			if mode, ok := params["mode"]; ok {
				if mode != 0 {
					v.SetMode(ShaperLower)
				} else {
					v.SetMode(ShaperHigher)
				}
			}
		default:
			return false
		}
		return true
	})
}

// CopyRecentWaveform copies up to maxFrames of the most recently
// produced stereo frames into an interleaved buffer, per spec §6's
// visualization surface.
func (e *Engine) CopyRecentWaveform(maxFrames int) []float64 {
	dest := make([]float64, maxFrames*2)
	n := e.tap.CopyLatestInterleaved(dest, maxFrames)
	return dest[:n*2]
}

// Configure rebuilds the waveform and effect chain from defaults for
// each named effect, per spec §4.8/§6. Unknown effect names are
// silently ignored.
func (e *Engine) Configure(cfg EngineConfig) {
	wf := ParseWaveform(cfg.WaveformName)
	e.SetWaveform(wf)
	e.UpdateADSR(cfg.Attack, cfg.Decay, cfg.Sustain, cfg.Release)

	e.effects.Clear()
	for _, name := range cfg.Effects {
		switch effectSynonym(name) {
		case "lowpass":
			e.AddEffect(NewLowPassEffect(e.sampleRate))
		case "delay":
			e.AddEffect(NewDelayEffect(e.sampleRate))
		case "octave":
			e.AddEffect(NewShaperEffect())
		}
	}
}
