// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"fmt"

	"github.com/relabs-tech/accel_orientation/internal/accel"
	"github.com/relabs-tech/accel_orientation/internal/samples"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

type trackerConfig struct {
	window      int
	secondStage int
	divisor     samples.Divisor
}

// Option configures a Tracker.
type Option func(*trackerConfig)

// WithSmoothing routes every reading through a window of n samples and
// classifies their trimmed mean instead of the raw reading.
func WithSmoothing(n int) Option {
	return func(c *trackerConfig) { c.window = n }
}

// WithSecondStage keeps the last n trimmed means in a second window and
// classifies their plain mean. It implies WithSmoothing; without it the
// first window holds a single sample.
func WithSecondStage(n int) Option {
	return func(c *trackerConfig) { c.secondStage = n }
}

// WithVarianceDivisor sets the variance denominator of both smoothing
// windows.
func WithVarianceDivisor(d samples.Divisor) Option {
	return func(c *trackerConfig) { c.divisor = d }
}

// Tracker reads a 3-axis accelerometer and classifies its orientation.
// It is not safe for concurrent use.
type Tracker[T vector.Component] struct {
	accel     accel.Accelerometer[vector.XYZ[T]]
	threshold T

	samples *samples.Buffer[vector.XYZ[T]]
	second  *samples.Buffer[vector.XYZ[T]]

	smoothed vector.XYZ[T]
	current  Orientation
	last     Orientation
}

// New returns a tracker for a. A reading must exceed threshold on some axis,
// in the accelerometer's own units, to count as a known orientation.
func New[T vector.Component](a accel.Accelerometer[vector.XYZ[T]], threshold T, opts ...Option) (*Tracker[T], error) {
	var cfg trackerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.window < 0 || cfg.secondStage < 0 {
		return nil, fmt.Errorf("orientation: negative window size (%d, %d)", cfg.window, cfg.secondStage)
	}
	if cfg.secondStage > 0 && cfg.window == 0 {
		cfg.window = 1
	}

	t := &Tracker[T]{accel: a, threshold: threshold}
	var err error
	if cfg.window > 0 {
		t.samples, err = samples.New[vector.XYZ[T]](cfg.window, samples.WithVarianceDivisor(cfg.divisor))
		if err != nil {
			return nil, fmt.Errorf("orientation: smoothing window: %w", err)
		}
	}
	if cfg.secondStage > 0 {
		t.second, err = samples.New[vector.XYZ[T]](cfg.secondStage, samples.WithVarianceDivisor(cfg.divisor))
		if err != nil {
			return nil, fmt.Errorf("orientation: second stage: %w", err)
		}
	}
	return t, nil
}

// Classify classifies v against the tracker threshold and records the
// result. Unknown never overwrites the last known orientation.
func (t *Tracker[T]) Classify(v vector.XYZ[T]) Orientation {
	o := Classify(float32(v.X), float32(v.Y), float32(v.Z), float32(t.threshold))
	t.current = o
	if o != Unknown {
		t.last = o
	}
	return o
}

// Update reads one sample from the accelerometer, passes it through the
// smoothing windows and classifies the result. It returns the raw sample.
// Driver errors are returned as they are and leave the state untouched.
func (t *Tracker[T]) Update() (vector.XYZ[T], error) {
	sample, err := t.accel.Acceleration()
	if err != nil {
		return vector.XYZ[T]{}, err
	}

	smoothed := sample
	if t.samples != nil {
		t.samples.Update(sample)
		smoothed = t.samples.TrimmedMean()
	}
	if t.second != nil {
		t.second.Update(smoothed)
		smoothed = t.second.Mean()
	}
	t.smoothed = smoothed
	t.Classify(smoothed)
	return sample, nil
}

// Orientation takes a reading and returns the resulting classification.
func (t *Tracker[T]) Orientation() (Orientation, error) {
	if _, err := t.Update(); err != nil {
		return Unknown, err
	}
	return t.current, nil
}

// MeanAcceleration takes a reading and returns the trimmed mean of the
// smoothing window, or the reading itself when there is no window.
func (t *Tracker[T]) MeanAcceleration() (vector.XYZ[T], error) {
	sample, err := t.Update()
	if err != nil {
		return vector.XYZ[T]{}, err
	}
	if t.samples == nil {
		return sample, nil
	}
	return t.samples.TrimmedMean(), nil
}

// Current is the result of the most recent classification.
func (t *Tracker[T]) Current() Orientation { return t.current }

// LastOrientation is the most recent classification other than Unknown.
func (t *Tracker[T]) LastOrientation() Orientation { return t.last }

// Smoothed is the vector that was last classified by Update.
func (t *Tracker[T]) Smoothed() vector.XYZ[T] { return t.smoothed }

func (t *Tracker[T]) Threshold() T { return t.threshold }

// Samples returns the smoothing window, or nil without WithSmoothing.
func (t *Tracker[T]) Samples() *samples.Buffer[vector.XYZ[T]] { return t.samples }

// SecondStage is the buffer of trimmed means, or nil without WithSecondStage.
func (t *Tracker[T]) SecondStage() *samples.Buffer[vector.XYZ[T]] { return t.second }

func (t *Tracker[T]) Accelerometer() accel.Accelerometer[vector.XYZ[T]] { return t.accel }
