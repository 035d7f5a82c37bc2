// effect_lowpass.go - Resonant RBJ biquad low-pass effect

package main

import (
	"math"
	"sync"
	"sync/atomic"
)

// biquadChannelState holds the two Direct-Form-II-Transposed delay
// memories for one channel, per spec §3/§4.3.
type biquadChannelState struct {
	z1, z2 float64
}

// lowPassCoeffs is an immutable snapshot of the biquad's derived
// coefficients plus the dry/wet mix. The audio thread only ever loads a
// snapshot atomically; it never touches the mutex below, per spec §5's
// "reads on the audio thread never acquire a blocking primitive."
type lowPassCoeffs struct {
	b0, b1, b2, a1, a2 float64
	mix                float64
}

// LowPassEffect is a resonant RBJ-cookbook low-pass filter with dry/wet
// mix, per spec §4.3. Grounded on audio_chip.go's per-sample filter
// update, but replacing both the teacher's state-variable filter and its
// mutex-guarded coefficient read with the spec-mandated DF-II-T biquad
// and an atomic.Pointer snapshot swap, matching effect.go's EffectChain
// double-buffering discipline.
type LowPassEffect struct {
	// mu serializes the control-thread setters against each other only;
	// the audio thread never acquires it.
	mu sync.Mutex

	sampleRate float64
	cutoffHz   float64
	q          float64

	coeffs atomic.Pointer[lowPassCoeffs]

	left, right biquadChannelState
}

// NewLowPassEffect returns a low-pass configured for sampleRate with its
// cutoff at the ceiling (LowPassNyquistScale of Nyquist) and full wet mix
// until setCutoff is called.
func NewLowPassEffect(sampleRate float64) *LowPassEffect {
	e := &LowPassEffect{
		sampleRate: sampleRate,
		q:          0.707,
	}
	e.coeffs.Store(&lowPassCoeffs{b0: 1, mix: 1})
	e.setCutoffLocked(sampleRate / 2 * LowPassNyquistScale)
	return e
}

func (e *LowPassEffect) effectName() string { return "lowpass" }

// SetSampleRate updates the sample rate and recomputes coefficients,
// per spec §4.3's "On cutoff, resonance, or sample-rate change,
// recompute coefficients."
func (e *LowPassEffect) SetSampleRate(sampleRate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sampleRate = sampleRate
	e.recomputeLocked()
}

func (e *LowPassEffect) setCutoff(hz float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setCutoffLocked(hz)
}

func (e *LowPassEffect) setCutoffLocked(hz float64) {
	nyquistCap := e.sampleRate / 2 * LowPassNyquistScale
	if nyquistCap < LowPassMinCutoffHz {
		nyquistCap = LowPassMinCutoffHz
	}
	e.cutoffHz = clampF64(hz, LowPassMinCutoffHz, nyquistCap)
	e.recomputeLocked()
}

func (e *LowPassEffect) cutoff() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cutoffHz
}

// SetResonance updates Q, clamped to [0.1, 10], and recomputes
// coefficients.
func (e *LowPassEffect) SetResonance(q float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.q = clampF64(q, LowPassMinQ, LowPassMaxQ)
	e.recomputeLocked()
}

// SetMix sets the dry/wet blend, clamped to [0,1].
func (e *LowPassEffect) SetMix(mix float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := *e.coeffs.Load()
	next.mix = clampF64(mix, 0, 1)
	e.coeffs.Store(&next)
}

// recomputeLocked derives the RBJ cookbook low-pass coefficients and
// publishes a new snapshot. If sampleRate <= 0 the coefficients collapse
// to identity (pass-through) rather than risk a NaN, per spec §7's "NaN
// inputs from ill-configured filters should be replaced by 0
// defensively... at coefficient-update time." They also collapse to
// pass-through when cutoffHz is at or below the floor, per spec §4.3's
// "When cutoff <= min, coefficients collapse to pass-through." Caller
// must hold mu.
func (e *LowPassEffect) recomputeLocked() {
	mix := e.coeffs.Load().mix

	if e.sampleRate <= 0 || e.cutoffHz <= LowPassMinCutoffHz {
		e.coeffs.Store(&lowPassCoeffs{b0: 1, mix: mix})
		return
	}

	omega := twoPi * e.cutoffHz / e.sampleRate
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / (2 * e.q)

	a0 := 1 + alpha
	a1 := -2 * cosW
	a2 := 1 - alpha
	b0 := (1 - cosW) / 2
	b1 := 1 - cosW
	b2 := (1 - cosW) / 2

	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		e.coeffs.Store(&lowPassCoeffs{b0: 1, mix: mix})
		return
	}

	e.coeffs.Store(&lowPassCoeffs{
		b0:  b0 / a0,
		b1:  b1 / a0,
		b2:  b2 / a0,
		a1:  a1 / a0,
		a2:  a2 / a0,
		mix: mix,
	})
}

// Process applies the DF-II-T biquad per channel and blends dry/wet.
// Audio-thread only: loads the coefficient snapshot atomically and never
// blocks.
func (e *LowPassEffect) Process(in StereoSample) StereoSample {
	c := e.coeffs.Load()

	l := processChannel(&e.left, in.L, c.b0, c.b1, c.b2, c.a1, c.a2)
	r := processChannel(&e.right, in.R, c.b0, c.b1, c.b2, c.a1, c.a2)

	return StereoSample{
		L: (1-c.mix)*in.L + c.mix*l,
		R: (1-c.mix)*in.R + c.mix*r,
	}
}

func processChannel(st *biquadChannelState, x, b0, b1, b2, a1, a2 float64) float64 {
	y := b0*x + st.z1
	st.z1 = b1*x + st.z2 - a1*y
	st.z2 = b2*x - a2*y
	return y
}

// Reset zeroes the per-channel delay memories.
func (e *LowPassEffect) Reset() {
	e.left = biquadChannelState{}
	e.right = biquadChannelState{}
}
