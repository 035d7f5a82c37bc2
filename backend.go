// backend.go - Host audio output binding

package main

// Backend is a host audio output sink, per spec §6's "construction
// function that creates an Engine from a sample rate, and a
// per-callback pull: for i in 0..nframes: (L,R) = engine.next_sample();
// out[2i]=L; out[2i+1]=R". Concrete backends own the platform-specific
// callback/stream plumbing; they never touch the Engine except by
// calling NextSample once per output frame.
//
// Grounded on audio_backend_oto.go/audio_backend_alsa.go/
// audio_backend_headless.go's OtoPlayer/ALSAPlayer trio, which this
// retrieved source never wires behind a common interface (there was no
// AudioOutput/NewAudioOutput in the teacher's retrieved files despite
// audio_chip.go and audio_backend_oto.go referencing them) — Backend and
// NewBackend are authored fresh in the shape those call sites implied.
type Backend interface {
	Start() error
	Stop()
	Close()
	IsStarted() bool
}

// NewBackend returns the backend selected at compile time by the
// headless/alsa build tags: oto (cross-platform) by default, a
// cgo+ALSA native backend when built with -tags alsa, or a no-op sink
// when built with -tags headless.
func NewBackend(engine *Engine, sampleRate int) (Backend, error) {
	return newPlatformBackend(engine, sampleRate)
}
