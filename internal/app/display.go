// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/imu"
)

// screen is the part of *ssd1306.Dev the display loop draws on.
type screen interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
}

// RunDisplay shows the latest orientation report on an SSD1306 OLED.
func RunDisplay() error {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	bus, err := i2creg.Open(cfg.Display.I2CBus)
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Printf("display: initialized on I2C bus %q", cfg.Display.I2CBus)

	if err := show(dev, renderSplash()); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	var view ReportView
	client, err := connectMQTT("display", cfg.MQTT.Broker, cfg.MQTT.ClientIDDisplay)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	if err := subscribe(client, "display", cfg.Topics.Orientation, view.HandleReport); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Display.UpdateInterval)
	defer ticker.Stop()
	sigCh := interrupted()

	log.Println("display: starting update loop")
	for {
		select {
		case <-sigCh:
			log.Println("display: shutting down")
			return dev.Halt()
		case <-ticker.C:
			r, ok := view.Report()
			if err := show(dev, renderReport(r, ok)); err != nil {
				log.Printf("display: error updating display: %v", err)
			}
		}
	}
}

func show(dev screen, img image.Image) error {
	return dev.Draw(dev.Bounds(), img, image.Point{})
}

// canvas is a blank 128x64 frame with a drawer in the built-in font.
func canvas() (*image1bit.VerticalLSB, *font.Drawer) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	return img, drawer
}

func drawLine(d *font.Drawer, x, y int, s string) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

func renderReport(r imu.Report, haveData bool) *image1bit.VerticalLSB {
	img, d := canvas()
	if !haveData {
		drawLine(d, 0, 26, "Orientation")
		drawLine(d, 0, 39, "Waiting...")
		return img
	}

	drawLine(d, 0, 13, r.Orientation.String())
	drawLine(d, 0, 26, "last "+r.Last.String())
	drawLine(d, 0, 39, fmt.Sprintf("R:%6.1f P:%6.1f", r.Roll, r.Pitch))
	drawLine(d, 0, 52, fmt.Sprintf("%+.2f %+.2f %+.2f", r.X, r.Y, r.Z))
	return img
}

func renderSplash() *image1bit.VerticalLSB {
	img, d := canvas()
	drawLine(d, 10, 26, "Inertial Pi")
	drawLine(d, 5, 43, "Orientation")
	return img
}
