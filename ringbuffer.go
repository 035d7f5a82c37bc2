// ringbuffer.go - Lock-free SPSC stereo ring buffer for UI visualization

package main

import "sync/atomic"

// RingBuffer is a single-producer/single-consumer stereo frame buffer,
// per spec §4.6. The audio callback is the sole producer (Push); a UI
// reader is the sole consumer (CopyLatestInterleaved). There is no
// mutual exclusion, only the memory ordering implied by atomic
// load/store — grounded on effect.go's EffectChain atomic.Pointer
// pattern, generalised here to an atomic write index over a fixed
// preallocated ring instead of a swapped slice.
type RingBuffer struct {
	left  []float64
	right []float64

	writeIndex atomic.Uint64 // next slot the producer will write
	written    atomic.Uint64 // total frames ever written (release-ordered)
}

// NewRingBuffer returns a ring sized to capacityFrames, floored at
// DefaultRingCapacityFloor per spec §4.6's "typically
// max(2048, sample_rate·0.5)".
func NewRingBuffer(capacityFrames int) *RingBuffer {
	if capacityFrames < DefaultRingCapacityFloor {
		capacityFrames = DefaultRingCapacityFloor
	}
	return &RingBuffer{
		left:  make([]float64, capacityFrames),
		right: make([]float64, capacityFrames),
	}
}

// CapacityFrames returns the ring's fixed capacity.
func (r *RingBuffer) CapacityFrames() int { return len(r.left) }

// AvailableFrames returns min(total frames written, capacity).
func (r *RingBuffer) AvailableFrames() int {
	w := r.written.Load()
	cap64 := uint64(len(r.left))
	if w > cap64 {
		return len(r.left)
	}
	return int(w)
}

// Push writes one stereo frame at the current write index, then
// publishes the new index and frame count with release ordering.
// Producer-only; called from the audio thread.
func (r *RingBuffer) Push(left, right float64) {
	idx := r.writeIndex.Load()
	n := uint64(len(r.left))
	slot := idx % n

	r.left[slot] = left
	r.right[slot] = right

	r.writeIndex.Store((idx + 1) % n)
	r.written.Add(1)
}

// CopyLatestInterleaved copies up to maxFrames of the most recently
// written frames into dest as interleaved [L0, R0, L1, R1, ...],
// returning the number of frames copied. Consumer-only; called from a
// UI thread. The read may observe up to one frame of torn sample on
// wrap, which is acceptable for visualization (spec §4.6).
func (r *RingBuffer) CopyLatestInterleaved(dest []float64, maxFrames int) int {
	n := len(r.left)
	if n == 0 || maxFrames <= 0 {
		return 0
	}

	writeIdx := int(r.writeIndex.Load()) // acquire snapshot

	framesToCopy := maxFrames
	if framesToCopy > n {
		framesToCopy = n
	}
	available := r.AvailableFrames()
	if framesToCopy > available {
		framesToCopy = available
	}
	if len(dest) < framesToCopy*2 {
		framesToCopy = len(dest) / 2
	}
	if framesToCopy <= 0 {
		return 0
	}

	start := ((writeIdx-framesToCopy)%n + n) % n

	for i := 0; i < framesToCopy; i++ {
		idx := (start + i) % n
		dest[2*i] = r.left[idx]
		dest[2*i+1] = r.right[idx]
	}

	return framesToCopy
}
