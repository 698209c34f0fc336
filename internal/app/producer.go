// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/accel_orientation/internal/accel"
	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/imu"
	"github.com/relabs-tech/accel_orientation/internal/orientation"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// Producer turns accelerometer readings into published orientation reports.
type Producer struct {
	src     *Source
	tracker *orientation.Tracker[float32]
	pub     Publisher
	topics  config.TopicsConfig
}

// newTracker builds the tracker pipeline described by tc.
func newTracker(a accel.Accelerometer[vector.F32x3], tc config.TrackerConfig) (*orientation.Tracker[float32], error) {
	return orientation.New[float32](a, tc.Threshold,
		orientation.WithSmoothing(tc.Window),
		orientation.WithSecondStage(tc.SecondStage),
		orientation.WithVarianceDivisor(tc.Divisor()),
	)
}

// NewProducer builds the tracker pipeline for src.
func NewProducer(src *Source, tc config.TrackerConfig, topics config.TopicsConfig, pub Publisher) (*Producer, error) {
	tr, err := newTracker(src.Accel, tc)
	if err != nil {
		return nil, fmt.Errorf("producer: %w", err)
	}
	return &Producer{src: src, tracker: tr, pub: pub, topics: topics}, nil
}

// Tracker exposes the producer's tracker.
func (p *Producer) Tracker() *orientation.Tracker[float32] { return p.tracker }

// Tick takes one reading and publishes the resulting report, plus the raw
// sample when the source has one.
func (p *Producer) Tick(t time.Time) (imu.Report, error) {
	if _, err := p.tracker.Update(); err != nil {
		return imu.Report{}, fmt.Errorf("producer: read %s: %w", p.src.Name, err)
	}

	r := imu.NewReport(t, p.src.Name, p.tracker)
	payload, err := json.Marshal(r)
	if err != nil {
		return r, fmt.Errorf("producer: report marshal: %w", err)
	}
	if err := p.pub.Publish(p.topics.Orientation, payload); err != nil {
		return r, fmt.Errorf("producer: publish %s: %w", p.topics.Orientation, err)
	}

	if p.src.Raw != nil && p.topics.AccelRaw != "" {
		payload, err := json.Marshal(imu.NewAccelRaw(p.src.Name, p.src.Raw.LastRaw()))
		if err != nil {
			return r, fmt.Errorf("producer: raw marshal: %w", err)
		}
		if err := p.pub.Publish(p.topics.AccelRaw, payload); err != nil {
			return r, fmt.Errorf("producer: publish %s: %w", p.topics.AccelRaw, err)
		}
	}
	return r, nil
}

// RunProducer reads the configured accelerometer on every tick and
// publishes orientation reports to MQTT until interrupted.
func RunProducer() error {
	cfg := config.Get()
	log.Println("starting accelerometer orientation producer")

	src, err := OpenSource(cfg.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	client, err := connectMQTT("producer", cfg.MQTT.Broker, cfg.MQTT.ClientIDProducer)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	p, err := NewProducer(src, cfg.Tracker, cfg.Topics, mqttPublisher{client})
	if err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Tracker.SampleInterval)
	defer ticker.Stop()
	sigCh := interrupted()

	log.Printf("producer: publishing to %s every %s", cfg.Topics.Orientation, cfg.Tracker.SampleInterval)
	last := orientation.Unknown
	for {
		select {
		case <-sigCh:
			log.Println("producer: shutting down")
			return nil
		case t := <-ticker.C:
			r, err := p.Tick(t)
			if err != nil {
				if kind, ok := accel.KindOf(err); ok {
					log.Printf("producer: %s (%v)", err, kind)
				} else {
					log.Printf("producer: %v", err)
				}
				continue
			}
			if r.Orientation != orientation.Unknown && r.Orientation != last {
				log.Printf("producer: %s %s -> %s (roll=%.1f pitch=%.1f)",
					t.Format(time.RFC3339), last, r.Orientation, r.Roll, r.Pitch)
				last = r.Orientation
			}
		}
	}
}
