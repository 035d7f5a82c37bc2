// effect.go - Effect interface and the lock-free double-buffered chain

package main

import (
	"math"
	"sync/atomic"
)

// StereoSample is one L/R sample pair.
type StereoSample struct {
	L, R float64
}

// Effect is satisfied by every member of the engine's closed effect set
// (low-pass, delay, shaper). Per spec §9's dynamic-dispatch note, the
// set is small and known, so a plain interface (rather than an
// enum-and-match) is kept here to match the teacher's polymorphic
// per-channel/per-effect handle style — but EffectChain never needs to
// downcast for processing, only for update_effect_parameters's by-name
// lookup (see effectName below and EffectChain.UpdateByName).
type Effect interface {
	Process(in StereoSample) StereoSample
	Reset()
	SetSampleRate(sampleRate float64)

	// effectName returns the canonical lowercase name used by
	// update_effect_parameters's synonym table (spec §4.8).
	effectName() string
}

// lowPassEffect is implemented by *LowPassEffect; isolated as its own
// interface so EffectChain can find "the" active low-pass without a
// type switch at every call site.
type lowPassEffect interface {
	Effect
	setCutoff(hz float64)
	cutoff() float64
}

// EffectChain is an ordered, identity-deduplicated list of effects.
// Structural mutation (Add/Clear) happens on the control thread; the
// audio thread only ever reads the chain via atomic.Pointer.Load, so it
// never blocks on a mutex the control thread might be holding (spec §5).
// Grounded on audio_backend_oto.go's atomic.Pointer[SoundChip] pattern,
// generalised here to atomic.Pointer[[]Effect].
type EffectChain struct {
	chain         atomic.Pointer[[]Effect]
	lastCutoffHz  atomic.Uint64 // bits of a float64, 0 = "no active low-pass"
	lowPassActive atomic.Bool
}

// NewEffectChain returns an empty chain.
func NewEffectChain() *EffectChain {
	c := &EffectChain{}
	empty := make([]Effect, 0)
	c.chain.Store(&empty)
	return c
}

// Process runs a sample through every effect in insertion order. Called
// from the audio thread; never allocates, never blocks.
func (c *EffectChain) Process(in StereoSample) StereoSample {
	effects := *c.chain.Load()
	out := in
	for _, e := range effects {
		out = e.Process(out)
	}
	return out
}

// Add appends effect if it is not already present by identity, per spec
// §4.8's add_effect. A nil effect is ignored. Control-thread only.
func (c *EffectChain) Add(e Effect) {
	if e == nil {
		return
	}
	old := *c.chain.Load()
	for _, existing := range old {
		if existing == e {
			return
		}
	}
	next := make([]Effect, len(old), len(old)+1)
	copy(next, old)
	next = append(next, e)
	c.chain.Store(&next)

	if lp, ok := e.(lowPassEffect); ok {
		c.lowPassActive.Store(true)
		c.lastCutoffHz.Store(math.Float64bits(lp.cutoff()))
	}
}

// Clear resets every effect then removes all of them, per spec §4.8's
// clear_effects, and clears low_pass_active.
func (c *EffectChain) Clear() {
	old := *c.chain.Load()
	for _, e := range old {
		e.Reset()
	}
	empty := make([]Effect, 0)
	c.chain.Store(&empty)
	c.lowPassActive.Store(false)
	c.lastCutoffHz.Store(0)
}

// ResetEffects calls Reset on every effect, preserving the chain order
// and membership, per spec §4.8's reset_effects.
func (c *EffectChain) ResetEffects() {
	for _, e := range *c.chain.Load() {
		e.Reset()
	}
}

// SetLowPassCutoff applies hz to every low-pass effect currently in the
// chain and updates last_cutoff. If no low-pass is active, last_cutoff
// clears to 0, per spec §4.8. Per spec §9's open question, this
// intentionally broadcasts to every low-pass present, not just the most
// recently added one.
func (c *EffectChain) SetLowPassCutoff(hz float64) {
	found := false
	for _, e := range *c.chain.Load() {
		if lp, ok := e.(lowPassEffect); ok {
			lp.setCutoff(hz)
			found = true
		}
	}
	if found {
		c.lowPassActive.Store(true)
		c.lastCutoffHz.Store(math.Float64bits(hz))
	} else {
		c.lowPassActive.Store(false)
		c.lastCutoffHz.Store(0)
	}
}

// GetLowPassCutoff returns the last applied cutoff if a low-pass is
// active, else 0, per spec §4.8's get_low_pass_cutoff.
func (c *EffectChain) GetLowPassCutoff() float64 {
	if !c.lowPassActive.Load() {
		return 0
	}
	return math.Float64frombits(c.lastCutoffHz.Load())
}

// UpdateByName finds the first effect whose name matches (case-
// insensitive synonyms resolved here via effectSynonym) and
// applies params via its concrete type's updater. Returns false if no
// effect of that kind is present, per spec §4.8's update_effect_parameters.
func (c *EffectChain) UpdateByName(name string, apply func(Effect) bool) bool {
	canon := effectSynonym(name)
	for _, e := range *c.chain.Load() {
		if e.effectName() == canon {
			return apply(e)
		}
	}
	return false
}

// effectSynonym resolves the spec §6/§4.8 case-insensitive effect-name
// synonyms to their canonical effectName().
func effectSynonym(name string) string {
	switch lowerASCII(name) {
	case "delay", "echo":
		return "delay"
	case "lowpass", "lpf", "filter":
		return "lowpass"
	case "octave":
		return "octave"
	default:
		return lowerASCII(name)
	}
}
