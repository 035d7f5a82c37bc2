package main

import (
	"math"
	"testing"
)

func TestEngineTriggerNoteOffNilClearsAllActiveNotes(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.TriggerNote(440)
	e.TriggerNote(880)

	e.TriggerNoteOff(nil)

	if e.noteOn {
		t.Errorf("expected note_on false after clearing all notes")
	}
	if len(e.activeNotes) != 0 {
		t.Errorf("expected active_notes empty, got %d", len(e.activeNotes))
	}
}

func TestEngineTriggerNoteOffFallsBackToPriorNote(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.TriggerNote(440)
	e.TriggerNote(880)

	f := 880.0
	e.TriggerNoteOff(&f)

	if !e.noteOn {
		t.Errorf("expected note_on still true with one note remaining")
	}
	if e.voice.frequency != 440 {
		t.Errorf("expected voice frequency to fall back to 440, got %v", e.voice.frequency)
	}
}

func TestEngineTriggerNoteIgnoresOutOfRangeFrequencies(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.TriggerNote(0)
	e.TriggerNote(-10)
	e.TriggerNote(25000)

	if len(e.activeNotes) != 0 {
		t.Errorf("expected no notes registered for out-of-range frequencies, got %d", len(e.activeNotes))
	}
}

func TestEngineEnvelopeReachesSustainThenZeroOnRelease(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.UpdateADSR(0.01, 0.01, 0.5, 0.01)
	e.TriggerNote(440)

	for i := 0; i < int(testSampleRate*0.1); i++ {
		e.NextSample()
	}
	if math.Abs(e.envelope.level-0.5) > 1e-2 {
		t.Errorf("expected envelope settled near sustain 0.5, got %v", e.envelope.level)
	}

	e.TriggerNoteOff(nil)
	for i := 0; i < int(testSampleRate*0.1); i++ {
		e.NextSample()
	}
	if e.envelope.level > 1e-3 {
		t.Errorf("expected envelope to decay to near zero after release, got %v", e.envelope.level)
	}
}

func TestEnginePitchBendShiftsFrequencyByCents(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.TriggerNote(440)
	e.SetPitchBend(8191)

	if math.Abs(e.voice.pitchBendCt-PitchBendMaxCents) > 1e-6 {
		t.Errorf("expected max positive bend cents, got %v", e.voice.pitchBendCt)
	}

	e.SetPitchBend(-8192)
	if math.Abs(e.voice.pitchBendCt+PitchBendMaxCents) > 1e-6 {
		t.Errorf("expected max negative bend cents, got %v", e.voice.pitchBendCt)
	}
}

func TestEngineConfigureSecondaryDisabledContributesNothing(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.SetWaveform(WaveSquare)
	e.UpdateADSR(0, 0, 1, 0)
	e.ConfigureSecondary(false, 1.0, 700, 1)
	e.TriggerNote(440)

	withDisabled := e.NextSample().L

	bare := NewEngine(testSampleRate)
	bare.SetWaveform(WaveSquare)
	bare.UpdateADSR(0, 0, 1, 0)
	bare.TriggerNote(440)
	primaryOnly := bare.NextSample().L

	if withDisabled != primaryOnly {
		t.Errorf("disabled secondary should leave the primary oscillator at full level: %v vs %v", withDisabled, primaryOnly)
	}
}

// TestEngineSineProducesExpectedPeakAmplitude mirrors scenario S1: a
// 440Hz sine voice at full sustain should swing through close to its
// full [-1,1] range once the envelope has reached sustain.
func TestEngineSineProducesExpectedPeakAmplitude(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.SetWaveform(WaveSine)
	e.UpdateADSR(0, 0, 1, 0)
	e.TriggerNote(440)

	var peak float64
	for i := 0; i < int(testSampleRate*0.05); i++ {
		s := e.NextSample()
		if math.Abs(s.L) > peak {
			peak = math.Abs(s.L)
		}
	}
	if peak < 0.9 {
		t.Errorf("expected sine voice to reach near-unity peak, got %v", peak)
	}
}

// TestEngineNoteOffDecaysTowardSilence mirrors scenario S2.
func TestEngineNoteOffDecaysTowardSilence(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.UpdateADSR(0.001, 0.001, 1.0, 0.05)
	e.TriggerNote(440)
	for i := 0; i < int(testSampleRate*0.01); i++ {
		e.NextSample()
	}

	e.TriggerNoteOff(nil)
	var last StereoSample
	for i := 0; i < int(testSampleRate*0.2); i++ {
		last = e.NextSample()
	}
	if math.Abs(last.L) > 1e-3 {
		t.Errorf("expected near-silence long after release, got %v", last.L)
	}
}

// TestEngineDelayProducesDecayingEchoPeaks mirrors scenario S3: a short
// square burst through a feedback delay produces one echo per window;
// this checks that successive echo-window peaks never increase.
func TestEngineDelayProducesDecayingEchoPeaks(t *testing.T) {
	e := NewEngine(testSampleRate)
	e.SetWaveform(WaveSquare)
	e.UpdateADSR(0, 0, 1, 0)
	d := NewDelayEffect(testSampleRate)
	d.SetDelayTime(0.02)
	d.SetFeedback(0.5)
	d.SetMix(0.5)
	e.AddEffect(d)

	e.TriggerNote(440)
	for i := 0; i < int(testSampleRate)/1000; i++ {
		e.NextSample()
	}
	e.TriggerNoteOff(nil)

	var peaks []float64
	windowFrames := int(testSampleRate * 0.02)
	for w := 0; w < 4; w++ {
		var peak float64
		for i := 0; i < windowFrames; i++ {
			s := e.NextSample()
			if math.Abs(s.L) > peak {
				peak = math.Abs(s.L)
			}
		}
		peaks = append(peaks, peak)
	}

	for i := 1; i < len(peaks); i++ {
		if peaks[i] > peaks[i-1]+1e-9 {
			t.Errorf("expected non-increasing echo peaks, got %v", peaks)
			break
		}
	}
}

// TestEngineLowPassAttenuatesMoreAtLowerCutoff mirrors scenario S4.
func TestEngineLowPassAttenuatesMoreAtLowerCutoff(t *testing.T) {
	run := func(cutoff float64) float64 {
		e := NewEngine(testSampleRate)
		e.SetWaveform(WaveSine)
		e.UpdateADSR(0, 0, 1, 0)
		lp := NewLowPassEffect(testSampleRate)
		lp.setCutoff(cutoff)
		e.AddEffect(lp)
		e.TriggerNote(4000)

		var sum float64
		n := int(testSampleRate * 0.05)
		for i := 0; i < n; i++ {
			s := e.NextSample()
			sum += s.L * s.L
		}
		return math.Sqrt(sum / float64(n))
	}

	rmsNarrow := run(200)
	rmsWide := run(10000)
	if rmsNarrow >= rmsWide {
		t.Errorf("expected a tighter cutoff to attenuate more: narrow=%v wide=%v", rmsNarrow, rmsWide)
	}
}

// TestEngineRaceUnderConcurrentControlAndAudioAccess stresses NextSample
// on one goroutine against control-thread parameter updates on another;
// the race detector is the oracle here, not any assertion.
func TestEngineRaceUnderConcurrentControlAndAudioAccess(t *testing.T) {
	e := NewEngine(testSampleRate)
	lp := NewLowPassEffect(testSampleRate)
	dl := NewDelayEffect(testSampleRate)
	e.AddEffect(lp)
	e.AddEffect(dl)
	e.TriggerNote(440)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5000; i++ {
			e.NextSample()
		}
	}()

	for i := 0; i < 1000; i++ {
		lp.setCutoff(float64(200 + i))
		dl.SetFeedback(0.1)
		e.SetLowPassCutoff(float64(300 + i))
	}
	<-done
}
