// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/imu"
	"github.com/relabs-tech/accel_orientation/internal/sensors"
)

// mockConsoleConfig is the loaded configuration, or the defaults when none
// was loaded. The mock source gets spikes unless the file sets them.
func mockConsoleConfig() config.Config {
	cfg := config.Default()
	if loaded := config.Get(); loaded != nil {
		cfg = *loaded
	}
	if cfg.Source.Mock.SpikeEvery == 0 {
		cfg.Source.Mock.SpikeEvery = 7
		cfg.Source.Mock.Spike = 3
	}
	return cfg
}

// RunMockConsole runs the tracker on the mock accelerometer and prints a
// line per tick, with no broker involved.
func RunMockConsole() error {
	cfg := mockConsoleConfig()

	src := sensors.NewMock(cfg.Source.Mock)
	tr, err := newTracker(src, cfg.Tracker)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Tracker.SampleInterval)
	defer ticker.Stop()
	sigCh := interrupted()

	for {
		select {
		case <-sigCh:
			log.Println("console: shutting down")
			return nil
		case t := <-ticker.C:
			if _, err := tr.Update(); err != nil {
				return err
			}
			fmt.Println(formatReport(imu.NewReport(t, "mock", tr)))
		}
	}
}
