package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestVoicePitchBendZeroIsZeroCents(t *testing.T) {
	v := NewVoice()
	v.setPitchBend(0)
	if v.pitchBendCt != 0 {
		t.Errorf("setPitchBend(0) = %v cents, want 0", v.pitchBendCt)
	}
}

func TestVoicePitchBendExtremes(t *testing.T) {
	v := NewVoice()
	v.setPitchBend(PitchBendMax)
	if math.Abs(v.pitchBendCt-100) > 1e-9 {
		t.Errorf("setPitchBend(%d) = %v cents, want +100", PitchBendMax, v.pitchBendCt)
	}

	v.setPitchBend(PitchBendMin)
	if math.Abs(v.pitchBendCt-(-100)) > 1e-9 {
		t.Errorf("setPitchBend(%d) = %v cents, want -100", PitchBendMin, v.pitchBendCt)
	}
}

func TestVoiceSilentWhenFrequencyOrEnvelopeZero(t *testing.T) {
	v := NewVoice()
	v.frequency = 0
	if s := v.next(1.0, testSampleRate); s != 0 {
		t.Errorf("expected 0 with frequency=0, got %v", s)
	}

	v.frequency = 440
	if s := v.next(0, testSampleRate); s != 0 {
		t.Errorf("expected 0 with envelopeLevel=0, got %v", s)
	}
}

func TestVoiceDisablingSecondaryLeavesPrimaryAtFullLevel(t *testing.T) {
	v := NewVoice()
	v.frequency = 440
	v.configureSecondary(false, 0.8, 0, 0)

	got := v.next(1.0, testSampleRate)

	primaryOnly := v.primaryWave.generate(440, testSampleRate, new(float64))
	if math.Abs(got-primaryOnly) > 1e-6 {
		t.Errorf("disabled secondary should leave primary untouched: got %v, want %v", got, primaryOnly)
	}
}

func TestVoiceConfigureSecondaryClampsFields(t *testing.T) {
	v := NewVoice()
	v.configureSecondary(true, 5, -10, 99)
	if v.secondary.Mix != 1 {
		t.Errorf("mix should clamp to 1, got %v", v.secondary.Mix)
	}
	if v.secondary.DetuneCents != 0 {
		t.Errorf("detune should clamp to >=0, got %v", v.secondary.DetuneCents)
	}
	if v.secondary.OctaveOffset != SecondaryOctaveMax {
		t.Errorf("octave should clamp to %d, got %d", SecondaryOctaveMax, v.secondary.OctaveOffset)
	}
}

func TestVoiceRandomizeLFOPhaseUsesSource(t *testing.T) {
	v := NewVoice()
	rng := rand.New(rand.NewSource(42))
	v.randomizeLFOPhase(rng)
	if v.lfoPhase < 0 || v.lfoPhase >= 1 {
		t.Errorf("lfoPhase %v out of [0,1)", v.lfoPhase)
	}
}
