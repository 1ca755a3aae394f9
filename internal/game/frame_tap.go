package game

import (
	"sync"
	"time"
)

// frameTap records how long the last N animator steps took into a ring
// buffer so the status line can report the recent frame cost.
type frameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    bool
	mu        sync.RWMutex
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{
		buffer: make([]time.Duration, ringSize),
	}
}

func (t *frameTap) record(d time.Duration) {
	t.mu.Lock()
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
		t.filled = true
	}
	t.mu.Unlock()
}

// snapshot returns up to the last n durations, most recent last.
func (t *frameTap) snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	size := t.nextIndex
	if t.filled {
		size = len(t.buffer)
	}
	if n > size {
		n = size
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out = append(out, t.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// average returns the mean of the recorded durations, or 0 when empty.
func (t *frameTap) average() time.Duration {
	samples := t.snapshot(len(t.buffer))
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}

func (t *frameTap) reset() {
	t.mu.Lock()
	t.nextIndex = 0
	t.filled = false
	t.mu.Unlock()
}
