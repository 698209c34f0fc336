// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/imu"
)

// formatReport renders one console line for a report.
func formatReport(r imu.Report) string {
	return fmt.Sprintf(
		"[ORIENT] %-6s %-14s last=%-14s x=%+6.3f y=%+6.3f z=%+6.3f  ROLL=%7.2f PITCH=%7.2f",
		r.Source, r.Orientation, r.Last, r.X, r.Y, r.Z, r.Roll, r.Pitch,
	)
}

func formatRaw(s imu.AccelRaw) string {
	return fmt.Sprintf("[RAW]    %-6s ax=%6d ay=%6d az=%6d", s.Source, s.Ax, s.Ay, s.Az)
}

// consolePrinter writes the latest report in a ReportView, once per new
// report.
type consolePrinter struct {
	w       io.Writer
	view    *ReportView
	printed int
}

// print writes the current report and raw sample unless the report was
// already printed. It returns the number of lines written.
func (p *consolePrinter) print() int {
	r, n := p.view.Reports()
	if n == p.printed {
		return 0
	}
	p.printed = n
	fmt.Fprintln(p.w, formatReport(r))
	if raw, ok := p.view.Raw(); ok {
		fmt.Fprintln(p.w, formatRaw(raw))
		return 2
	}
	return 1
}

// consoleLoop prints on every tick until stop fires.
func consoleLoop(p *consolePrinter, ticks <-chan time.Time, stop <-chan os.Signal) {
	for {
		select {
		case <-stop:
			return
		case <-ticks:
			p.print()
		}
	}
}

// RunConsoleMQTT prints the latest report and raw sample the producer
// published, once every console.log_interval.
func RunConsoleMQTT() error {
	cfg := config.Get()
	view := &ReportView{}

	client, err := connectMQTT("console", cfg.MQTT.Broker, cfg.MQTT.ClientIDConsole)
	if err != nil {
		return err
	}

	if err := subscribe(client, "console", cfg.Topics.Orientation, view.HandleReport); err != nil {
		return err
	}
	if cfg.Topics.AccelRaw != "" {
		if err := subscribe(client, "console", cfg.Topics.AccelRaw, view.HandleRaw); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(cfg.Console.LogInterval)
	defer ticker.Stop()

	log.Printf("console: printing every %s", cfg.Console.LogInterval)
	consoleLoop(&consolePrinter{w: os.Stdout, view: view}, ticker.C, interrupted())

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
