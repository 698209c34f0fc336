// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package accel defines what the orientation code needs from an
// accelerometer driver, and the errors such a driver returns.
package accel

import "github.com/relabs-tech/accel_orientation/internal/vector"

// Accelerometer reads one normalized acceleration vector per call.
type Accelerometer[V vector.Vector[V]] interface {
	Acceleration() (V, error)
}

// RawAccelerometer is a driver exposing raw counts and a normalized
// channel separately.
type RawAccelerometer[R vector.Vector[R], V vector.Vector[V]] interface {
	AccelRaw() (R, error)
	AccelNorm() (V, error)
	// SampleRate returns the output data rate in Hz.
	SampleRate() (float32, error)
}

// Normalized adapts a RawAccelerometer to Accelerometer by reading its
// normalized channel.
func Normalized[R vector.Vector[R], V vector.Vector[V]](r RawAccelerometer[R, V]) Accelerometer[V] {
	return normalized[R, V]{r}
}

type normalized[R vector.Vector[R], V vector.Vector[V]] struct {
	r RawAccelerometer[R, V]
}

func (n normalized[R, V]) Acceleration() (V, error) { return n.r.AccelNorm() }

// Func adapts a plain function to Accelerometer.
type Func[V vector.Vector[V]] func() (V, error)

func (f Func[V]) Acceleration() (V, error) { return f() }
