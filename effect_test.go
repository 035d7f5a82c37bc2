package main

import "testing"

type nopEffect struct{ name string }

func (n *nopEffect) Process(in StereoSample) StereoSample { return in }
func (n *nopEffect) Reset()                                {}
func (n *nopEffect) SetSampleRate(sampleRate float64)       {}
func (n *nopEffect) effectName() string                    { return n.name }

func TestEffectChainAddIsIdentityDeduplicated(t *testing.T) {
	c := NewEffectChain()
	e := &nopEffect{name: "octave"}
	c.Add(e)
	c.Add(e)
	if got := len(*c.chain.Load()); got != 1 {
		t.Errorf("expected 1 effect after duplicate Add, got %d", got)
	}
}

func TestEffectChainAddIgnoresNil(t *testing.T) {
	c := NewEffectChain()
	c.Add(nil)
	if got := len(*c.chain.Load()); got != 0 {
		t.Errorf("expected 0 effects after adding nil, got %d", got)
	}
}

func TestEffectChainSetLowPassCutoffBroadcasts(t *testing.T) {
	c := NewEffectChain()
	a := NewLowPassEffect(testSampleRate)
	b := NewLowPassEffect(testSampleRate)
	c.Add(a)
	c.Add(b)

	c.SetLowPassCutoff(1234)

	if a.cutoff() != 1234 || b.cutoff() != 1234 {
		t.Errorf("expected both low-pass effects updated: a=%v b=%v", a.cutoff(), b.cutoff())
	}
	if got := c.GetLowPassCutoff(); got != 1234 {
		t.Errorf("GetLowPassCutoff() = %v, want 1234", got)
	}
}

func TestEffectChainNoActiveLowPassReturnsZero(t *testing.T) {
	c := NewEffectChain()
	c.Add(&nopEffect{name: "octave"})
	if got := c.GetLowPassCutoff(); got != 0 {
		t.Errorf("GetLowPassCutoff() with no low-pass = %v, want 0", got)
	}
}

func TestEffectChainClearResetsAndEmpties(t *testing.T) {
	c := NewEffectChain()
	c.Add(NewLowPassEffect(testSampleRate))
	c.Clear()
	if got := len(*c.chain.Load()); got != 0 {
		t.Errorf("expected empty chain after Clear, got %d", got)
	}
	if c.GetLowPassCutoff() != 0 {
		t.Errorf("expected low_pass_active cleared after Clear")
	}
}

func TestEffectSynonymResolution(t *testing.T) {
	cases := map[string]string{
		"echo":   "delay",
		"DELAY":  "delay",
		"lpf":    "lowpass",
		"Filter": "lowpass",
		"octave": "octave",
		"other":  "other",
	}
	for in, want := range cases {
		if got := effectSynonym(in); got != want {
			t.Errorf("effectSynonym(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEffectChainUpdateByNameReturnsFalseWhenAbsent(t *testing.T) {
	c := NewEffectChain()
	found := c.UpdateByName("delay", func(e Effect) bool { return true })
	if found {
		t.Errorf("expected false when no matching effect present")
	}
}
