//go:build headless

// backend_headless.go - no-op audio output for headless/test builds

package main

// headlessBackend is a no-op sink: Start/Stop only flip a flag, without
// opening any real audio device or pulling samples from the engine.
// Grounded on audio_backend_headless.go's OtoPlayer stub.
type headlessBackend struct {
	started bool
}

func init() {
	compiledFeatures = append(compiledFeatures, "audio: headless (no-op)")
}

func newPlatformBackend(engine *Engine, sampleRate int) (Backend, error) {
	return &headlessBackend{}, nil
}

func (b *headlessBackend) Start() error {
	b.started = true
	return nil
}

func (b *headlessBackend) Stop() {
	b.started = false
}

func (b *headlessBackend) Close() {
	b.started = false
}

func (b *headlessBackend) IsStarted() bool {
	return b.started
}
