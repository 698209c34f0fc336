// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/relabs-tech/accel_orientation/internal/samples"
)

// Source kinds.
const (
	SourceMock    = "mock"
	SourceMPU9250 = "mpu9250"
	SourceSerial  = "serial"
)

// Config holds all application configuration values.
type Config struct {
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Topics  TopicsConfig  `yaml:"topics"`
	Source  SourceConfig  `yaml:"source"`
	Tracker TrackerConfig `yaml:"tracker"`
	Console ConsoleConfig `yaml:"console"`
	Web     WebConfig     `yaml:"web"`
	Display DisplayConfig `yaml:"display"`
}

type MQTTConfig struct {
	Broker           string `yaml:"broker"`
	ClientIDProducer string `yaml:"client_id_producer"`
	ClientIDConsole  string `yaml:"client_id_console"`
	ClientIDWeb      string `yaml:"client_id_web"`
	ClientIDDisplay  string `yaml:"client_id_display"`
}

type TopicsConfig struct {
	Orientation string `yaml:"orientation"`
	AccelRaw    string `yaml:"accel_raw"`
}

// SourceConfig selects the accelerometer driver.
type SourceConfig struct {
	Kind    string        `yaml:"kind"`
	Name    string        `yaml:"name"`
	MPU9250 MPU9250Config `yaml:"mpu9250"`
	Serial  SerialConfig  `yaml:"serial"`
	Mock    MockConfig    `yaml:"mock"`
}

type MPU9250Config struct {
	SPIDevice string `yaml:"spi_device"`
	CSPin     string `yaml:"cs_pin"`
	// AccelRange: 0=±2g, 1=±4g, 2=±8g, 3=±16g
	AccelRange byte `yaml:"accel_range"`
	SelfTest   bool `yaml:"self_test"`
	Calibrate  bool `yaml:"calibrate"`
}

type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate uint   `yaml:"baud_rate"`
}

type MockConfig struct {
	// Hold is how many reads each pose lasts.
	Hold int `yaml:"hold"`
	// SpikeEvery injects a spike every n reads; 0 disables it.
	SpikeEvery int     `yaml:"spike_every"`
	Spike      float32 `yaml:"spike"`
}

// TrackerConfig tunes the orientation pipeline. Threshold is in g.
type TrackerConfig struct {
	Threshold       float32       `yaml:"threshold"`
	Window          int           `yaml:"window"`
	SecondStage     int           `yaml:"second_stage"`
	VarianceDivisor string        `yaml:"variance_divisor"`
	SampleInterval  time.Duration `yaml:"sample_interval"`
}

type ConsoleConfig struct {
	LogInterval time.Duration `yaml:"log_interval"`
}

type WebConfig struct {
	Addr string `yaml:"addr"`
}

type DisplayConfig struct {
	// I2CBus is the periph bus name; empty picks the first bus.
	I2CBus         string        `yaml:"i2c_bus"`
	UpdateInterval time.Duration `yaml:"update_interval"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Default returns the configuration used for anything a file leaves out.
func Default() Config {
	return Config{
		MQTT: MQTTConfig{
			Broker:           "tcp://localhost:1883",
			ClientIDProducer: "accel-orientation-producer",
			ClientIDConsole:  "accel-orientation-console",
			ClientIDWeb:      "accel-orientation-web",
			ClientIDDisplay:  "accel-orientation-display",
		},
		Topics: TopicsConfig{
			Orientation: "inertial/orientation",
			AccelRaw:    "inertial/accel/raw",
		},
		Source: SourceConfig{
			Kind: SourceMock,
			Name: "left",
			MPU9250: MPU9250Config{
				SPIDevice: "/dev/spidev0.0",
				CSPin:     "8",
			},
			Serial: SerialConfig{
				Port:     "/dev/ttyUSB0",
				BaudRate: 115200,
			},
			Mock: MockConfig{Hold: 40},
		},
		Tracker: TrackerConfig{
			Threshold:       0.5,
			Window:          16,
			VarianceDivisor: "capacity",
			SampleInterval:  50 * time.Millisecond,
		},
		Console: ConsoleConfig{LogInterval: time.Second},
		Web:     WebConfig{Addr: ":8080"},
		Display: DisplayConfig{UpdateInterval: 500 * time.Millisecond},
	}
}

// Load reads a YAML configuration file on top of Default.
func Load(configPath string) (*Config, error) {
	b, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Divisor maps tracker.variance_divisor onto the sample buffer option.
func (t TrackerConfig) Divisor() samples.Divisor {
	if t.VarianceDivisor == "length" {
		return samples.DivisorLength
	}
	return samples.DivisorCapacity
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt.broker is required")
	}
	if c.Topics.Orientation == "" {
		return fmt.Errorf("topics.orientation is required")
	}

	switch c.Source.Kind {
	case SourceMock:
		if c.Source.Mock.Hold < 1 {
			return fmt.Errorf("source.mock.hold must be >= 1")
		}
	case SourceMPU9250:
		if c.Source.MPU9250.SPIDevice == "" {
			return fmt.Errorf("source.mpu9250.spi_device is required")
		}
		if c.Source.MPU9250.AccelRange > 3 {
			return fmt.Errorf("source.mpu9250.accel_range must be 0-3, got %d", c.Source.MPU9250.AccelRange)
		}
	case SourceSerial:
		if c.Source.Serial.Port == "" {
			return fmt.Errorf("source.serial.port is required")
		}
		if c.Source.Serial.BaudRate == 0 {
			return fmt.Errorf("source.serial.baud_rate is required")
		}
	default:
		return fmt.Errorf("source.kind must be one of %q, %q, %q; got %q",
			SourceMock, SourceMPU9250, SourceSerial, c.Source.Kind)
	}

	if c.Tracker.Threshold <= 0 {
		return fmt.Errorf("tracker.threshold must be > 0")
	}
	if c.Tracker.Window < 0 || c.Tracker.SecondStage < 0 {
		return fmt.Errorf("tracker.window and tracker.second_stage must be >= 0")
	}
	switch c.Tracker.VarianceDivisor {
	case "capacity", "length":
	default:
		return fmt.Errorf("tracker.variance_divisor must be capacity or length, got %q", c.Tracker.VarianceDivisor)
	}
	if c.Tracker.SampleInterval <= 0 {
		return fmt.Errorf("tracker.sample_interval must be > 0")
	}
	if c.Console.LogInterval <= 0 {
		return fmt.Errorf("console.log_interval must be > 0")
	}
	if c.Display.UpdateInterval <= 0 {
		return fmt.Errorf("display.update_interval must be > 0")
	}
	return nil
}

// InitGlobal loads the global configuration once. Later calls return nil
// without reloading.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration, or nil before InitGlobal.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
