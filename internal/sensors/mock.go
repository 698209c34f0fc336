// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"math"

	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// mockPoses is the order the mock source turns the device through, in g.
var mockPoses = [...]vector.F32x3{
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: -1, Z: 0},
}

// Mock is an accelerometer that cycles through the six axis-aligned poses
// with a small wobble, holding each for a fixed number of reads.
type Mock struct {
	cfg config.MockConfig
	n   int
}

// NewMock creates a mock accelerometer.
func NewMock(cfg config.MockConfig) *Mock {
	if cfg.Hold < 1 {
		cfg.Hold = 1
	}
	return &Mock{cfg: cfg}
}

func (m *Mock) Acceleration() (vector.F32x3, error) {
	n := m.n
	m.n++

	v := mockPoses[(n/m.cfg.Hold)%len(mockPoses)]
	v.X += float32(0.05 * math.Sin(float64(n)*0.3))
	v.Y += float32(0.05 * math.Cos(float64(n)*0.21))

	if m.cfg.SpikeEvery > 0 && n%m.cfg.SpikeEvery == m.cfg.SpikeEvery-1 {
		v.X += m.cfg.Spike
		v.Y += m.cfg.Spike
	}
	return v, nil
}

// Reads returns how many readings have been taken.
func (m *Mock) Reads() int { return m.n }
