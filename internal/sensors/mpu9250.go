// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/mpu9250"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/accel_orientation/internal/accel"
	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// mpuOutputRate is the accelerometer output rate with the DLPF enabled and
// SMPLRT_DIV at its reset value.
const mpuOutputRate = 1000

// accelRegisters is the part of the periph driver the adapter reads from.
type accelRegisters interface {
	GetAccelerationX() (int16, error)
	GetAccelerationY() (int16, error)
	GetAccelerationZ() (int16, error)
}

// MPU9250 exposes the accelerometer of an MPU9250 as raw counts and in g.
type MPU9250 struct {
	name       string
	dev        accelRegisters
	accelRange byte
	last       vector.I16x3
}

// NewMPU9250 initializes an MPU9250 over SPI.
func NewMPU9250(name string, cfg config.MPU9250Config) (*MPU9250, error) {
	if _, err := host.Init(); err != nil {
		return nil, accel.FromCause(fmt.Errorf("%s IMU: periph host init: %w", name, err))
	}

	cs := gpioreg.ByName(cfg.CSPin)
	if cs == nil {
		return nil, accel.NewWithCause(accel.KindParam, fmt.Errorf("%s IMU: CS pin %q not found", name, cfg.CSPin))
	}

	tr, err := mpu9250.NewSpiTransport(cfg.SPIDevice, cs)
	if err != nil {
		return nil, accel.FromCause(fmt.Errorf("%s IMU: SPI transport (%s): %w", name, cfg.SPIDevice, err))
	}

	imu, err := mpu9250.New(*tr)
	if err != nil {
		return nil, accel.NewWithCause(accel.KindDevice, fmt.Errorf("%s IMU: device creation: %w", name, err))
	}
	if err := imu.Init(); err != nil {
		return nil, accel.NewWithCause(accel.KindDevice, fmt.Errorf("%s IMU: initialization: %w", name, err))
	}

	if err := imu.SetAccelRange(cfg.AccelRange); err != nil {
		return nil, accel.NewWithCause(accel.KindParam, fmt.Errorf("%s IMU: set accel range: %w", name, err))
	}
	log.Printf("%s IMU: accelerometer range set to %d (±%dg)", name, cfg.AccelRange, fullScaleG(cfg.AccelRange))

	if cfg.SelfTest {
		if res, err := imu.SelfTest(); err != nil {
			log.Printf("Warning: %s IMU self-test failed: %v", name, err)
		} else {
			log.Printf("%s IMU self-test passed: %+v", name, res)
		}
	}
	if cfg.Calibrate {
		if err := imu.Calibrate(); err != nil {
			log.Printf("Warning: %s IMU calibration failed: %v", name, err)
		} else {
			log.Printf("%s IMU calibration complete", name)
		}
	}

	return newMPU9250(name, imu, cfg.AccelRange), nil
}

func newMPU9250(name string, dev accelRegisters, accelRange byte) *MPU9250 {
	return &MPU9250{name: name, dev: dev, accelRange: accelRange}
}

// fullScaleG is the ± range in g for an ACCEL_FS_SEL value.
func fullScaleG(r byte) int { return 2 << r }

// AccelRaw reads the three accelerometer axes as signed counts.
func (s *MPU9250) AccelRaw() (vector.I16x3, error) {
	ax, err := s.dev.GetAccelerationX()
	if err != nil {
		return vector.I16x3{}, accel.FromCause(fmt.Errorf("%s IMU accel X: %w", s.name, err))
	}
	ay, err := s.dev.GetAccelerationY()
	if err != nil {
		return vector.I16x3{}, accel.FromCause(fmt.Errorf("%s IMU accel Y: %w", s.name, err))
	}
	az, err := s.dev.GetAccelerationZ()
	if err != nil {
		return vector.I16x3{}, accel.FromCause(fmt.Errorf("%s IMU accel Z: %w", s.name, err))
	}
	s.last = vector.NewXYZ(ax, ay, az)
	return s.last, nil
}

// LastRaw is the most recent successful AccelRaw reading.
func (s *MPU9250) LastRaw() vector.I16x3 { return s.last }

// AccelNorm reads the accelerometer and scales it to g.
func (s *MPU9250) AccelNorm() (vector.F32x3, error) {
	raw, err := s.AccelRaw()
	if err != nil {
		return vector.F32x3{}, err
	}
	v := raw.F32()
	v.Scale(float32(fullScaleG(s.accelRange)) / 32768)
	return v, nil
}

func (s *MPU9250) Acceleration() (vector.F32x3, error) { return s.AccelNorm() }

// SampleRate returns the accelerometer output data rate in Hz.
func (s *MPU9250) SampleRate() (float32, error) { return mpuOutputRate, nil }
