// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package samples keeps a sliding window of accelerometer vectors and
// computes statistics over it, including a trimmed mean that drops outliers.
package samples

import (
	"fmt"
	"iter"

	"github.com/relabs-tech/accel_orientation/internal/fastmath"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// OutlierSigma is how many standard deviations away from the mean a sample
// may be before the trimmed mean drops it.
const OutlierSigma = 3.0

// Divisor selects the Bessel-corrected variance denominator.
type Divisor int

const (
	// DivisorCapacity divides by capacity-1, even while the buffer is
	// still filling up. This is the default.
	DivisorCapacity Divisor = iota
	// DivisorLength divides by len-1, the number of stored samples.
	DivisorLength
)

type options struct {
	divisor Divisor
}

// Option configures a Buffer.
type Option func(*options)

// WithVarianceDivisor picks the variance denominator used by the trimmed mean.
func WithVarianceDivisor(d Divisor) Option {
	return func(o *options) { o.divisor = d }
}

// Buffer is a fixed-capacity ring buffer of vectors. Once full, each Update
// overwrites the slot at the write cursor, which is the oldest write.
//
// Storage order is not recency order after the first wrap.
type Buffer[V vector.Vector[V]] struct {
	buf      []V
	capacity int
	pos      int
	divisor  Divisor
}

// New returns an empty buffer holding at most capacity samples.
func New[V vector.Vector[V]](capacity int, opts ...Option) (*Buffer[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("samples: capacity must be >= 1, got %d", capacity)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Buffer[V]{
		buf:      make([]V, 0, capacity),
		capacity: capacity,
		divisor:  o.divisor,
	}, nil
}

// Update stores sample, evicting the oldest one when the buffer is full.
func (b *Buffer[V]) Update(sample V) {
	if len(b.buf) < b.capacity {
		b.buf = append(b.buf, sample)
	} else {
		b.buf[b.pos] = sample
	}
	b.pos = (b.pos + 1) % b.capacity
}

// Len returns the number of stored samples.
func (b *Buffer[V]) Len() int { return len(b.buf) }

// Cap returns the capacity fixed at construction.
func (b *Buffer[V]) Cap() int { return b.capacity }

// Divisor returns the variance denominator in use.
func (b *Buffer[V]) Divisor() Divisor { return b.divisor }

// Reset drops all samples and rewinds the write cursor.
func (b *Buffer[V]) Reset() {
	b.buf = b.buf[:0]
	b.pos = 0
}

// Slice returns a copy of the stored samples in storage order.
func (b *Buffer[V]) Slice() []V {
	out := make([]V, len(b.buf))
	copy(out, b.buf)
	return out
}

// All yields the stored samples in storage order.
func (b *Buffer[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, s := range b.buf {
			if !yield(s) {
				return
			}
		}
	}
}

// Mean is the arithmetic mean of every stored sample, outliers included.
// A buffer holding copies of a single sample returns that sample exactly.
func (b *Buffer[V]) Mean() V {
	if s, ok := b.uniform(); ok {
		return s
	}
	return vector.Mean(b.All())
}

// uniform reports whether the buffer is non-empty and every stored sample
// equals the first one.
func (b *Buffer[V]) uniform() (V, bool) {
	var zero V
	if len(b.buf) == 0 {
		return zero, false
	}
	for _, s := range b.buf[1:] {
		if s != b.buf[0] {
			return zero, false
		}
	}
	return b.buf[0], true
}

// Trimmed yields the samples stored when Trimmed is called that lie within
// OutlierSigma standard deviations of their mean. Later updates affect
// neither the samples nor the statistics.
func (b *Buffer[V]) Trimmed() iter.Seq[V] {
	return b.trimmed(b.Slice())
}

func (b *Buffer[V]) trimmed(buf []V) iter.Seq[V] {
	mean := b.Mean()
	stddev := b.stddev(mean)
	return func(yield func(V) bool) {
		for _, s := range buf {
			// zero or NaN deviation: nothing can be an outlier
			if stddev > 0 && vector.Distance(s, mean)/stddev >= OutlierSigma {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// TrimmedMean is the mean of the samples yielded by Trimmed. If every
// sample is rejected it falls back to Mean.
func (b *Buffer[V]) TrimmedMean() V {
	if s, ok := b.uniform(); ok {
		return s
	}
	kept := 0
	trimmed := b.trimmed(b.buf)
	mean := vector.Mean(func(yield func(V) bool) {
		for s := range trimmed {
			kept++
			if !yield(s) {
				return
			}
		}
	})
	if kept == 0 {
		return b.Mean()
	}
	return mean
}

// StdDev returns the standard deviation of sample distances from the mean.
func (b *Buffer[V]) StdDev() float32 {
	return b.stddev(b.Mean())
}

func (b *Buffer[V]) stddev(mean V) float32 {
	var sum float32
	for _, s := range b.buf {
		d := vector.Distance(s, mean)
		sum += d * d
	}

	n := b.capacity
	if b.divisor == DivisorLength {
		n = len(b.buf)
	}
	if n <= 1 {
		return 0
	}
	return fastmath.Sqrt(sum / float32(n-1))
}
