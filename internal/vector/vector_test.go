// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package vector

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat[V any](v V, n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

func TestMean_RepeatedVectorIsIdentity(t *testing.T) {
	ints := NewXYZ[int16](-3, 100, 7)
	for n := 1; n <= 16; n++ {
		assert.Equal(t, ints, Mean(repeat(ints, n)), "n=%d", n)
	}

	bytes := NewXY[uint8](200, 3)
	for n := 1; n <= 16; n++ {
		assert.Equal(t, bytes, Mean(repeat(bytes, n)), "n=%d", n)
	}

	floats := NewXYZ[float32](0.1, -9.81, 3.3)
	for n := 1; n <= 16; n++ {
		got := Mean(repeat(floats, n))
		assert.InDelta(t, floats.X, got.X, 1e-5)
		assert.InDelta(t, floats.Y, got.Y, 1e-5)
		assert.InDelta(t, floats.Z, got.Z, 1e-5)
	}
}

func TestMean_DividesBySampleCount(t *testing.T) {
	got := MeanOf(
		NewXYZ[float32](1, 0, -2),
		NewXYZ[float32](3, 0, -4),
		NewXYZ[float32](5, 3, -6),
	)
	assert.Equal(t, NewXYZ[float32](3, 1, -4), got)
}

func TestMean_Empty(t *testing.T) {
	assert.Equal(t, I16x3{}, Mean(slices.Values([]I16x3(nil))))
	assert.Equal(t, F32x2{}, MeanOf[F32x2]())
}

func TestMean_TruncatesIntegerComponents(t *testing.T) {
	got := MeanOf(NewXY[int8](1, -1), NewXY[int8](2, -2))
	// 1.5 and -1.5 truncate toward zero
	assert.Equal(t, NewXY[int8](1, -1), got)
}

func TestFromSlice(t *testing.T) {
	assert.Equal(t, NewXYZ[uint16](1, 2, 3), XYZFromSlice([]uint16{1, 2, 3}))
	assert.Equal(t, NewXY[int8](-4, 5), XYFromSlice([]int8{-4, 5}))
}

func TestFromSlice_WrongLengthPanics(t *testing.T) {
	require.Panics(t, func() { XYZFromSlice([]int16{1, 2}) })
	require.Panics(t, func() { XYZFromSlice([]int16{1, 2, 3, 4}) })
	require.Panics(t, func() { XYFromSlice([]float32{1}) })
	require.Panics(t, func() { XYFromSlice([]float32{1, 2, 3}) })
}

func TestFromSeq(t *testing.T) {
	v := NewXYZ[int16](7, -8, 9)
	assert.Equal(t, v, XYZFromSeq(v.Components()))

	w := NewXY[float32](0.5, 1.5)
	assert.Equal(t, w, XYFromSeq(w.Components()))
}

func TestFromFloats(t *testing.T) {
	assert.Equal(t, NewXYZ[int16](1, -1, 0), XYZFromFloats[int16]([]float32{1.9, -1.9, 0.5}))
	assert.Equal(t, NewXY[float32](1.9, -1.9), FromFloats[F32x2]([]float32{1.9, -1.9}))

	require.Panics(t, func() { XYZFromFloats[int16]([]float32{1, 2}) })
	require.Panics(t, func() { FromFloats[I8x2]([]float32{1, 2, 3}) })
}

func TestGet(t *testing.T) {
	v := NewXYZ[int8](1, 2, 3)
	for i, want := range []int8{1, 2, 3} {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := v.Get(3)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)

	_, ok = NewXY[int8](1, 2).Get(2)
	assert.False(t, ok)
}

func TestComponents_Restartable(t *testing.T) {
	v := NewXYZ[uint8](10, 20, 30)
	seq := v.Components()
	assert.Equal(t, []uint8{10, 20, 30}, slices.Collect(seq))
	assert.Equal(t, []uint8{10, 20, 30}, slices.Collect(seq))

	// early stop
	for c := range seq {
		assert.Equal(t, uint8(10), c)
		break
	}
}

func TestDistanceAndMagnitude(t *testing.T) {
	a := NewXYZ[int16](0, 0, 0)
	b := NewXYZ[int16](3, 4, 0)
	assert.InDelta(t, 5, Distance(a, b), 5*0.05)
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Equal(t, float32(0), Distance(b, b))

	assert.Equal(t, float32(4), Magnitude(NewXYZ[float32](0, 0, -4)))
	assert.InDelta(t, 5, Magnitude(NewXY[float32](3, -4)), 5*0.05)
}

func TestScale(t *testing.T) {
	v := NewXYZ[int16](10, -10, 3)
	v.Scale(0.5)
	assert.Equal(t, NewXYZ[int16](5, -5, 1), v)

	f := NewXY[float32](1, -2)
	f.Scale(2)
	assert.Equal(t, NewXY[float32](2, -4), f)
}

func TestF32(t *testing.T) {
	assert.Equal(t, NewXYZ[float32](-128, 0, 127), NewXYZ[int8](-128, 0, 127).F32())
	assert.Equal(t, NewXY[float32](65535, 1), NewXY[uint16](65535, 1).F32())
}

func TestFloat_OutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { NewXY[int8](1, 2).Float(2) })
}
