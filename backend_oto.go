//go:build !headless && !alsa

// backend_oto.go - cross-platform stereo output via ebitengine/oto

package main

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// otoBackend pulls stereo frames from an Engine and feeds them to oto's
// io.Reader-driven player. Grounded on audio_backend_oto.go's OtoPlayer:
// same pre-allocated sample buffer and Start/Stop/Close/IsStarted
// lifecycle, generalised from a 1-channel chip-ring reader to a
// 2-channel Engine.NextSample() producer.
type otoBackend struct {
	ctx       *oto.Context
	player    *oto.Player
	engine    *Engine
	sampleBuf []float32
	started   bool
	mutex     sync.Mutex
}

func init() {
	compiledFeatures = append(compiledFeatures, "audio: oto (cross-platform)")
}

func newPlatformBackend(engine *Engine, sampleRate int) (Backend, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	b := &otoBackend{
		ctx:       ctx,
		engine:    engine,
		sampleBuf: make([]float32, 4096),
	}
	b.player = ctx.NewPlayer(b)
	return b, nil
}

// Read fills p with interleaved stereo float32 samples pulled from the
// engine, one frame (L, R) at a time.
func (b *otoBackend) Read(p []byte) (n int, err error) {
	numSamples := len(p) / 4
	if len(b.sampleBuf) < numSamples {
		b.sampleBuf = make([]float32, numSamples)
	}
	samples := b.sampleBuf[:numSamples]

	for i := 0; i+1 < numSamples; i += 2 {
		s := b.engine.NextSample()
		samples[i] = float32(s.L)
		samples[i+1] = float32(s.R)
	}

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (b *otoBackend) Start() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if !b.started {
		b.player.Play()
		b.started = true
	}
	return nil
}

func (b *otoBackend) Stop() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.started {
		b.player.Pause()
		b.started = false
	}
}

func (b *otoBackend) Close() {
	b.Stop()
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
}

func (b *otoBackend) IsStarted() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.started
}
