package main

import "testing"

func TestFilterParamsDropsUnrecognizedKeys(t *testing.T) {
	got := filterParams("lowpass", map[string]float64{
		"cutoff":    1000,
		"resonance": 2,
		"bogus":     1,
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 recognized keys, got %d: %v", len(got), got)
	}
	if _, ok := got["bogus"]; ok {
		t.Errorf("expected unrecognized key dropped")
	}
}

func TestFilterParamsUnknownEffectKindReturnsNil(t *testing.T) {
	got := filterParams("reverb", map[string]float64{"mix": 0.5})
	if got != nil {
		t.Errorf("expected nil for unknown effect kind, got %v", got)
	}
}

func TestFilterParamsDelayAndOctaveKeys(t *testing.T) {
	delay := filterParams("delay", map[string]float64{"time": 0.3, "feedback": 0.4, "mix": 0.5, "unused": 1})
	if len(delay) != 3 {
		t.Errorf("expected 3 recognized delay keys, got %d: %v", len(delay), delay)
	}

	octave := filterParams("octave", map[string]float64{"blend": 0.5, "mode": 1, "unused": 1})
	if len(octave) != 2 {
		t.Errorf("expected 2 recognized octave keys, got %d: %v", len(octave), octave)
	}
}
