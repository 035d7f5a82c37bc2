package main

import (
	"math"
	"testing"
)

const testSampleRate = 44100.0

func TestEnvelopeReachesSustainThenZero(t *testing.T) {
	e := NewEnvelope()
	e.SetParams(0.01, 0.1, 0.7, 0.2)

	attackDecaySamples := int((0.01 + 0.1) * testSampleRate)
	var level float64
	for i := 0; i < attackDecaySamples+10; i++ {
		level = e.Process(true, testSampleRate)
	}
	if level < 0.69 || level > 0.71 {
		t.Fatalf("expected level near sustain 0.7 after attack+decay, got %v", level)
	}

	releaseSamples := int(0.2 * testSampleRate)
	for i := 0; i < releaseSamples+10; i++ {
		level = e.Process(false, testSampleRate)
	}
	if level > 1e-3 {
		t.Fatalf("expected level near 0 after release, got %v", level)
	}
}

func TestEnvelopeLegatoRetriggerResumesFromCurrentLevel(t *testing.T) {
	e := NewEnvelope()
	e.SetParams(0.05, 0.05, 0.5, 1.0)

	for i := 0; i < 100; i++ {
		e.Process(true, testSampleRate)
	}
	levelBeforeRelease := e.level

	e.Process(false, testSampleRate) // begin release
	levelAfterOneReleaseSample := e.level

	e.Process(true, testSampleRate) // legato retrigger mid-release
	if e.stage != envAttack {
		t.Fatalf("expected envAttack after legato retrigger, got stage %v", e.stage)
	}
	// One attack step from the released level, not a restart from 0.
	want := levelAfterOneReleaseSample + (1/testSampleRate)/0.05
	if math.Abs(e.level-want) > 1e-9 {
		t.Fatalf("legato retrigger should resume attack from the current level: before=%v after-release=%v now=%v want=%v",
			levelBeforeRelease, levelAfterOneReleaseSample, e.level, want)
	}
}

func TestEnvelopeNeverLeavesZeroOneRange(t *testing.T) {
	e := NewEnvelope()
	e.SetParams(0.001, 0.001, 1.0, 0.001)
	for i := 0; i < 1000; i++ {
		noteOn := (i/50)%2 == 0
		level := e.Process(noteOn, testSampleRate)
		if level < 0 || level > 1 {
			t.Fatalf("level %v out of [0,1] at step %d", level, i)
		}
	}
}
