// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package vector

import "iter"

// XY is a 2-axis vector.
type XY[T Component] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// NewXY returns the vector (x, y).
func NewXY[T Component](x, y T) XY[T] {
	return XY[T]{X: x, Y: y}
}

// XYFromSeq builds an XY from exactly two components.
// Any other count panics.
func XYFromSeq[T Component](seq iter.Seq[T]) XY[T] {
	var c [2]T
	collect(seq, c[:])
	return XY[T]{X: c[0], Y: c[1]}
}

// XYFromSlice builds an XY from a two element slice.
func XYFromSlice[T Component](s []T) XY[T] {
	return XYFromSeq(sliceSeq(s))
}

// XYFromFloats narrows two floats into an XY.
func XYFromFloats[T Component](f []float32) XY[T] {
	return XYFromSeq(narrow[T](f, 2))
}

func (v XY[T]) Axes() int { return 2 }

// Get returns component i, or false if i is not 0 or 1.
func (v XY[T]) Get(i int) (T, bool) {
	switch i {
	case 0:
		return v.X, true
	case 1:
		return v.Y, true
	}
	var zero T
	return zero, false
}

func (v XY[T]) Float(i int) float32 {
	c, ok := v.Get(i)
	if !ok {
		panic("vector: index out of range")
	}
	return float32(c)
}

func (v XY[T]) WithFloats(f []float32) XY[T] {
	return XYFromFloats[T](f)
}

// Components yields X then Y.
func (v XY[T]) Components() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

func (v XY[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Scale multiplies each component by n in place. Integer components
// truncate toward zero; out of range results are not checked.
func (v *XY[T]) Scale(n float32) {
	v.X = T(float32(v.X) * n)
	v.Y = T(float32(v.Y) * n)
}

// F32 widens v to float32 components.
func (v XY[T]) F32() F32x2 {
	return F32x2{X: float32(v.X), Y: float32(v.Y)}
}

func sliceSeq[T Component](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range s {
			if !yield(c) {
				return
			}
		}
	}
}
