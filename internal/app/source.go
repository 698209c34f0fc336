// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"

	"github.com/relabs-tech/accel_orientation/internal/accel"
	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/sensors"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// RawSampler exposes the raw counts behind the last normalized reading.
type RawSampler interface {
	LastRaw() vector.I16x3
}

// Source is an opened accelerometer.
type Source struct {
	Name  string
	Accel accel.Accelerometer[vector.F32x3]
	// Raw is nil for drivers without a raw channel.
	Raw   RawSampler
	Close func() error
}

// OpenSource opens the configured accelerometer.
func OpenSource(cfg config.SourceConfig) (*Source, error) {
	src := &Source{
		Name:  cfg.Name,
		Close: func() error { return nil },
	}

	switch cfg.Kind {
	case config.SourceMock:
		log.Printf("source: using mock accelerometer (hold=%d)", cfg.Mock.Hold)
		src.Accel = sensors.NewMock(cfg.Mock)

	case config.SourceMPU9250:
		dev, err := sensors.NewMPU9250(cfg.Name, cfg.MPU9250)
		if err != nil {
			return nil, err
		}
		rate, _ := dev.SampleRate()
		log.Printf("source: using %s MPU9250 on %s (%.0f Hz)", cfg.Name, cfg.MPU9250.SPIDevice, rate)
		src.Accel = accel.Normalized[vector.I16x3, vector.F32x3](dev)
		src.Raw = dev

	case config.SourceSerial:
		s, err := sensors.OpenSerial(cfg.Name, cfg.Serial)
		if err != nil {
			return nil, err
		}
		src.Accel = s
		src.Close = s.Close

	default:
		return nil, fmt.Errorf("source: unknown kind %q", cfg.Kind)
	}
	return src, nil
}
