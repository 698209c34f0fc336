// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/accel_orientation/internal/accel"
	"github.com/relabs-tech/accel_orientation/internal/samples"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// script is an accelerometer that replays readings and errors in order.
type script[T vector.Component] struct {
	steps []step[T]
	reads int
}

type step[T vector.Component] struct {
	v   vector.XYZ[T]
	err error
}

func (s *script[T]) Acceleration() (vector.XYZ[T], error) {
	st := s.steps[s.reads%len(s.steps)]
	s.reads++
	return st.v, st.err
}

func readings[T vector.Component](vs ...vector.XYZ[T]) *script[T] {
	s := &script[T]{}
	for _, v := range vs {
		s.steps = append(s.steps, step[T]{v: v})
	}
	return s
}

func TestTracker_ClassifyIsSticky(t *testing.T) {
	tr, err := New[float32](readings(vector.F32x3{}), 2.0)
	require.NoError(t, err)
	assert.Equal(t, Unknown, tr.LastOrientation())

	assert.Equal(t, LandscapeUp, tr.Classify(vector.NewXYZ[float32](3, 0, 0)))
	assert.Equal(t, LandscapeUp, tr.LastOrientation())

	assert.Equal(t, Unknown, tr.Classify(vector.NewXYZ[float32](0, 0, 0)))
	assert.Equal(t, Unknown, tr.Current())
	assert.Equal(t, LandscapeUp, tr.LastOrientation())

	assert.Equal(t, LandscapeUp, tr.Classify(vector.NewXYZ[float32](3, 3, 0)))
	assert.Equal(t, PortraitDown, tr.Classify(vector.NewXYZ[float32](0, -3, 0)))
	assert.Equal(t, PortraitDown, tr.LastOrientation())
}

func TestTracker_IntegerThreshold(t *testing.T) {
	// ±2g range, 16384 counts per g
	src := readings(vector.NewXYZ[int16](120, -300, -16200))
	tr, err := New[int16](src, 8192)
	require.NoError(t, err)

	o, err := tr.Orientation()
	require.NoError(t, err)
	assert.Equal(t, FaceDown, o)
	assert.Equal(t, int16(8192), tr.Threshold())
}

func TestTracker_UpdateReadsOnce(t *testing.T) {
	src := readings(vector.NewXYZ[float32](0, 3, 0), vector.NewXYZ[float32](0, 0, 3))
	tr, err := New[float32](src, 2)
	require.NoError(t, err)

	v, err := tr.Update()
	require.NoError(t, err)
	assert.Equal(t, vector.NewXYZ[float32](0, 3, 0), v)
	assert.Equal(t, 1, src.reads)
	assert.Equal(t, PortraitUp, tr.Current())

	o, err := tr.Orientation()
	require.NoError(t, err)
	assert.Equal(t, FaceUp, o)
	assert.Equal(t, 2, src.reads)
}

func TestTracker_PropagatesDriverError(t *testing.T) {
	busErr := accel.FromCause(assert.AnError)
	src := &script[float32]{steps: []step[float32]{
		{v: vector.NewXYZ[float32](0, 0, -3)},
		{err: busErr},
		{err: busErr},
		{err: busErr},
	}}
	tr, err := New[float32](src, 2, WithSmoothing(4))
	require.NoError(t, err)

	_, err = tr.Update()
	require.NoError(t, err)
	require.Equal(t, FaceDown, tr.Current())

	_, err = tr.Update()
	require.Error(t, err)
	assert.Same(t, busErr, err)
	assert.Equal(t, FaceDown, tr.Current())
	assert.Equal(t, 1, tr.Samples().Len())

	_, err = tr.Orientation()
	assert.Same(t, busErr, err)
	_, err = tr.MeanAcceleration()
	assert.Same(t, busErr, err)
}

func TestTracker_SmoothingRejectsSpike(t *testing.T) {
	flat := vector.NewXYZ[float32](0, 0, 1)
	spike := vector.NewXYZ[float32](5, 0, 0)

	vs := make([]vector.F32x3, 0, 16)
	for i := 0; i < 15; i++ {
		vs = append(vs, flat)
	}
	vs = append(vs, spike)

	smooth, err := New[float32](readings(vs...), 0.5, WithSmoothing(16))
	require.NoError(t, err)
	raw, err := New[float32](readings(vs...), 0.5)
	require.NoError(t, err)

	for range vs {
		_, err := smooth.Update()
		require.NoError(t, err)
		_, err = raw.Update()
		require.NoError(t, err)
	}

	assert.Equal(t, LandscapeUp, raw.Current())
	assert.Equal(t, FaceUp, smooth.Current())
	assert.Equal(t, flat, smooth.Smoothed())
	assert.Equal(t, 16, smooth.Samples().Len())
}

func TestTracker_SecondStage(t *testing.T) {
	up := vector.NewXYZ[float32](3, 0, 0)
	down := vector.NewXYZ[float32](-3, 0, 0)
	tr, err := New[float32](readings(up, down, down, down), 2, WithSecondStage(3))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Samples().Cap())

	want := []Orientation{LandscapeUp, Unknown, Unknown, LandscapeDown}
	for i, w := range want {
		_, err := tr.Update()
		require.NoError(t, err)
		assert.Equal(t, w, tr.Current(), "update %d", i)
	}
	assert.Equal(t, LandscapeDown, tr.LastOrientation())
}

func TestTracker_VarianceDivisorReachesBothWindows(t *testing.T) {
	tr, err := New[float32](readings(vector.F32x3{}), 1,
		WithSmoothing(8),
		WithSecondStage(4),
		WithVarianceDivisor(samples.DivisorLength),
	)
	require.NoError(t, err)
	assert.Equal(t, samples.DivisorLength, tr.Samples().Divisor())
	require.NotNil(t, tr.SecondStage())
	assert.Equal(t, 4, tr.SecondStage().Cap())
	assert.Equal(t, samples.DivisorLength, tr.SecondStage().Divisor())

	bare, err := New[float32](readings(vector.F32x3{}), 1, WithSmoothing(8))
	require.NoError(t, err)
	assert.Nil(t, bare.SecondStage())
	assert.Equal(t, samples.DivisorCapacity, bare.Samples().Divisor())
}

func TestTracker_MeanAcceleration(t *testing.T) {
	src := readings(vector.NewXYZ[int16](0, 0, 100), vector.NewXYZ[int16](0, 0, 200))
	tr, err := New[int16](src, 50, WithSmoothing(2))
	require.NoError(t, err)

	_, err = tr.MeanAcceleration()
	require.NoError(t, err)
	m, err := tr.MeanAcceleration()
	require.NoError(t, err)
	assert.Equal(t, vector.NewXYZ[int16](0, 0, 150), m)

	bare, err := New[int16](readings(vector.NewXYZ[int16](1, 2, 3)), 50)
	require.NoError(t, err)
	m, err = bare.MeanAcceleration()
	require.NoError(t, err)
	assert.Equal(t, vector.NewXYZ[int16](1, 2, 3), m)
	assert.Nil(t, bare.Samples())
}

func TestNew_RejectsNegativeWindow(t *testing.T) {
	_, err := New[float32](readings(vector.F32x3{}), 1, WithSmoothing(-1))
	assert.Error(t, err)
}

func TestComputePose(t *testing.T) {
	const tol = 0.2
	p := ComputePose(vector.NewXYZ[float32](0, 0, 1))
	assert.InDelta(t, 0, p.Roll, tol)
	assert.InDelta(t, 0, p.Pitch, tol)

	p = ComputePose(vector.NewXYZ[float32](0, 1, 0))
	assert.InDelta(t, 90, p.Roll, tol)

	p = ComputePose(vector.NewXYZ[float32](1, 0, 0))
	assert.InDelta(t, -90, p.Pitch, tol)

	p = ComputePose(vector.NewXYZ[float32](0, 0, -1))
	assert.InDelta(t, 180, p.Roll, tol)
}
