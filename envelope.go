// envelope.go - ADSR amplitude envelope state machine

package main

// envelopeStage is the ADSR state machine's current stage, per spec §3.
type envelopeStage int

const (
	envIdle envelopeStage = iota
	envAttack
	envDecay
	envSustain
	envRelease
)

// Envelope is a piecewise-linear ADSR amplitude generator. One instance
// per voice. Grounded on audio_chip.go's updateEnvelope stage dispatch,
// generalised from a fixed-samples-per-stage ramp to a per-call rate so
// that retargeting mid-stage (spec §4.2) works without recomputing a
// sample counter.
type Envelope struct {
	attackS  float64
	decayS   float64
	sustain  float64
	releaseS float64

	stage       envelopeStage
	level       float64
	releaseFrom float64 // level captured at the instant Release began
	prevNoteOn  bool
}

// NewEnvelope returns an idle envelope with the spec's default ADSR.
func NewEnvelope() *Envelope {
	e := &Envelope{}
	e.SetParams(DefaultAttack, DefaultDecay, DefaultSustain, DefaultRelease)
	return e
}

// SetParams replaces the ADSR parameters. Negative values clamp to 0 and
// sustain clamps to [0,1], per spec §4.8's update_adsr policy.
func (e *Envelope) SetParams(attackS, decayS, sustain, releaseS float64) {
	e.attackS = maxF64(attackS, 0)
	e.decayS = maxF64(decayS, 0)
	e.sustain = clampF64(sustain, 0, 1)
	e.releaseS = maxF64(releaseS, 0)
}

// Reset returns the envelope to Idle at level 0.
func (e *Envelope) Reset() {
	e.stage = envIdle
	e.level = 0
	e.releaseFrom = 0
	e.prevNoteOn = false
}

// Process advances the envelope by one sample and returns the new level
// in [0,1], per spec §3's state machine.
func (e *Envelope) Process(noteOn bool, sampleRate float64) float64 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	dt := 1.0 / sampleRate

	rising := noteOn && !e.prevNoteOn
	falling := !noteOn && e.prevNoteOn
	e.prevNoteOn = noteOn

	if e.stage == envIdle && rising {
		e.stage = envAttack
	}
	if falling && e.stage != envIdle {
		e.releaseFrom = e.level
		e.stage = envRelease
	}
	if rising && e.stage == envRelease {
		// Legato: resume Attack from the current level rather than
		// restarting from 0 (spec §9's "legato retrigger" note).
		e.stage = envAttack
	}

	switch e.stage {
	case envIdle:
		e.level = 0

	case envAttack:
		if e.attackS <= 0 {
			e.level = 1
		} else {
			e.level += dt / e.attackS
		}
		if e.level >= 1 {
			e.level = 1
			e.stage = envDecay
		}

	case envDecay:
		target := e.sustain
		if e.decayS <= 0 {
			e.level = target
		} else {
			rate := (1 - target) / e.decayS
			if e.level > target {
				e.level -= rate * dt
				if e.level <= target {
					e.level = target
				}
			} else {
				e.level = target
			}
		}
		if e.level == target {
			e.stage = envSustain
		}

	case envSustain:
		e.level = e.sustain

	case envRelease:
		if e.releaseS <= 0 || e.releaseFrom <= 0 {
			e.level = 0
		} else {
			rate := e.releaseFrom / e.releaseS
			e.level -= rate * dt
			if e.level <= 0 {
				e.level = 0
			}
		}
		if e.level <= 0 {
			e.stage = envIdle
		}
	}

	if e.level < 0 {
		e.level = 0
	} else if e.level > 1 {
		e.level = 1
	}
	return e.level
}

func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
