// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package vector

import "iter"

// XYZ is a 3-axis vector.
type XYZ[T Component] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

// NewXYZ returns the vector (x, y, z).
func NewXYZ[T Component](x, y, z T) XYZ[T] {
	return XYZ[T]{X: x, Y: y, Z: z}
}

// XYZFromSeq builds an XYZ from exactly three components.
// Any other count panics.
func XYZFromSeq[T Component](seq iter.Seq[T]) XYZ[T] {
	var c [3]T
	collect(seq, c[:])
	return XYZ[T]{X: c[0], Y: c[1], Z: c[2]}
}

// XYZFromSlice builds an XYZ from a three element slice.
func XYZFromSlice[T Component](s []T) XYZ[T] {
	return XYZFromSeq(sliceSeq(s))
}

// XYZFromFloats narrows three floats into an XYZ.
func XYZFromFloats[T Component](f []float32) XYZ[T] {
	return XYZFromSeq(narrow[T](f, 3))
}

func (v XYZ[T]) Axes() int { return 3 }

// Get returns component i, or false outside [0, 3).
func (v XYZ[T]) Get(i int) (T, bool) {
	switch i {
	case 0:
		return v.X, true
	case 1:
		return v.Y, true
	case 2:
		return v.Z, true
	}
	var zero T
	return zero, false
}

func (v XYZ[T]) Float(i int) float32 {
	c, ok := v.Get(i)
	if !ok {
		panic("vector: index out of range")
	}
	return float32(c)
}

func (v XYZ[T]) WithFloats(f []float32) XYZ[T] {
	return XYZFromFloats[T](f)
}

// Components yields X, Y then Z.
func (v XYZ[T]) Components() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z)
	}
}

func (v XYZ[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Scale multiplies each component by n in place. Integer components
// truncate toward zero; out of range results are not checked.
func (v *XYZ[T]) Scale(n float32) {
	v.X = T(float32(v.X) * n)
	v.Y = T(float32(v.Y) * n)
	v.Z = T(float32(v.Z) * n)
}

// F32 widens v to float32 components.
func (v XYZ[T]) F32() F32x3 {
	return F32x3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
