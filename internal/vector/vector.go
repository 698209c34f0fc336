// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package vector provides small fixed-axis vectors for accelerometer data.
//
// Only a closed set of shapes exists: 2-axis (XY) and 3-axis (XYZ) vectors
// over int8, int16, uint8, uint16 and float32 components. Generic helpers in
// this file (Mean, Distance, Magnitude) work on any of them through the
// Vector constraint.
package vector

import (
	"fmt"
	"iter"
	"slices"

	"github.com/relabs-tech/accel_orientation/internal/fastmath"
)

// MaxAxes is the largest axis count Mean can accumulate.
const MaxAxes = 3

// Component is the set of numeric kinds a vector can hold.
type Component interface {
	int8 | int16 | uint8 | uint16 | float32
}

// Vector is the constraint satisfied by XY[T] and XYZ[T].
type Vector[V any] interface {
	comparable

	// Axes returns the number of components.
	Axes() int
	// Float returns component i widened to float32.
	// i must be in [0, Axes()).
	Float(i int) float32
	// WithFloats builds a new vector of the same shape from floats,
	// narrowing each value to the component kind.
	WithFloats(f []float32) V
}

// Concrete shapes.
type (
	I8x2  = XY[int8]
	I16x2 = XY[int16]
	U8x2  = XY[uint8]
	U16x2 = XY[uint16]
	F32x2 = XY[float32]

	I8x3  = XYZ[int8]
	I16x3 = XYZ[int16]
	U8x3  = XYZ[uint8]
	U16x3 = XYZ[uint16]
	F32x3 = XYZ[float32]
)

// FromFloats builds a V from a float slice whose length must equal the
// axis count of V. Integer components truncate toward zero.
func FromFloats[V Vector[V]](f []float32) V {
	var zero V
	return zero.WithFloats(f)
}

// Mean returns the per-axis arithmetic mean of vectors.
// An empty sequence yields the zero vector.
func Mean[V Vector[V]](vectors iter.Seq[V]) V {
	var zero V
	axes := zero.Axes()
	if axes > MaxAxes {
		panic(fmt.Sprintf("vector: mean supports at most %d axes, got %d", MaxAxes, axes))
	}

	var acc [MaxAxes]float32
	n := 0
	for v := range vectors {
		for i := 0; i < axes; i++ {
			acc[i] += v.Float(i)
		}
		n++
	}
	if n == 0 {
		return zero
	}

	for i := range acc[:axes] {
		acc[i] /= float32(n)
	}
	return zero.WithFloats(acc[:axes])
}

// MeanOf is Mean over a list of vectors.
func MeanOf[V Vector[V]](vectors ...V) V {
	return Mean(slices.Values(vectors))
}

// Distance returns the approximate Euclidean distance between a and b.
func Distance[V Vector[V]](a, b V) float32 {
	var sum float32
	for i := 0; i < a.Axes(); i++ {
		d := a.Float(i) - b.Float(i)
		sum += d * d
	}
	return fastmath.Sqrt(sum)
}

// Magnitude returns the approximate Euclidean norm of v.
func Magnitude[V Vector[V]](v V) float32 {
	var sum float32
	for i := 0; i < v.Axes(); i++ {
		n := v.Float(i)
		sum += n * n
	}
	return fastmath.Sqrt(sum)
}

// collect pulls exactly n components out of seq or panics.
func collect[T Component](seq iter.Seq[T], dst []T) {
	i := 0
	for c := range seq {
		if i == len(dst) {
			panic(fmt.Sprintf("vector: too many components for %d-axis vector", len(dst)))
		}
		dst[i] = c
		i++
	}
	if i != len(dst) {
		panic(fmt.Sprintf("vector: %d-axis vector needs %d components, got %d", len(dst), len(dst), i))
	}
}

func narrow[T Component](f []float32, n int) iter.Seq[T] {
	if len(f) != n {
		panic(fmt.Sprintf("vector: %d-axis vector needs %d floats, got %d", n, n, len(f)))
	}
	return func(yield func(T) bool) {
		for _, v := range f {
			if !yield(T(v)) {
				return
			}
		}
	}
}
