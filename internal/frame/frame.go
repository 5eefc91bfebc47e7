// Package frame holds the per-frame scheduling helpers used by the showcase.
// Everything here is driven from a single Update loop and is not safe for
// concurrent use.
package frame

import "time"

// Latest coalesces values set between two frames: only the last one is
// handed out by Take.
type Latest[T any] struct {
	value   T
	pending bool
}

// Set records v, replacing any value not yet taken.
func (l *Latest[T]) Set(v T) {
	l.value = v
	l.pending = true
}

// Take returns the pending value and clears it.
func (l *Latest[T]) Take() (T, bool) {
	if !l.pending {
		var zero T
		return zero, false
	}
	l.pending = false
	return l.value, true
}

// Pending reports whether a value is waiting for the next frame.
func (l *Latest[T]) Pending() bool { return l.pending }

// Debouncer holds the newest value of a bursty input and releases it once
// no newer value arrived for Delay. Each Push returns a sequence number; a
// timer carrying a stale number is ignored by Fire.
type Debouncer[T any] struct {
	Delay time.Duration

	value   T
	seq     uint64
	at      time.Time
	pending bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{Delay: delay}
}

// Push records v at now and returns the sequence number a timer should
// report back to Fire.
func (d *Debouncer[T]) Push(v T, now time.Time) uint64 {
	d.seq++
	d.value = v
	d.at = now
	d.pending = true
	return d.seq
}

// Fire releases the value if seq is the newest push and the quiet period
// has elapsed at now.
func (d *Debouncer[T]) Fire(seq uint64, now time.Time) (T, bool) {
	var zero T
	if !d.pending || seq != d.seq {
		return zero, false
	}
	if now.Sub(d.at) < d.Delay {
		return zero, false
	}
	d.pending = false
	return d.value, true
}

// Pending reports whether a pushed value has not been released yet.
func (d *Debouncer[T]) Pending() bool { return d.pending }

// Interval returns the frame period for fps, defaulting to 60.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
