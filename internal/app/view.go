// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/relabs-tech/accel_orientation/internal/imu"
)

// ReportView holds the latest payloads received from the producer.
// MQTT callbacks write it while the HTTP or display loop reads it.
type ReportView struct {
	mu      sync.RWMutex
	report  imu.Report
	have    bool
	count   int
	raw     imu.AccelRaw
	haveRaw bool
}

// HandleReport decodes and stores an orientation report.
func (v *ReportView) HandleReport(payload []byte) error {
	var r imu.Report
	if err := json.Unmarshal(payload, &r); err != nil {
		return fmt.Errorf("report unmarshal: %w", err)
	}
	v.mu.Lock()
	v.report = r
	v.have = true
	v.count++
	v.mu.Unlock()
	return nil
}

// HandleRaw decodes and stores a raw accelerometer sample.
func (v *ReportView) HandleRaw(payload []byte) error {
	var r imu.AccelRaw
	if err := json.Unmarshal(payload, &r); err != nil {
		return fmt.Errorf("raw unmarshal: %w", err)
	}
	v.mu.Lock()
	v.raw = r
	v.haveRaw = true
	v.mu.Unlock()
	return nil
}

func (v *ReportView) Report() (imu.Report, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.report, v.have
}

// Reports returns the latest report with the number of reports received so
// far; zero means none.
func (v *ReportView) Reports() (imu.Report, int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.report, v.count
}

func (v *ReportView) Raw() (imu.AccelRaw, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.raw, v.haveRaw
}
