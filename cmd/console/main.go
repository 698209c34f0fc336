// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/accel_orientation/internal/app"
	"github.com/relabs-tech/accel_orientation/internal/config"
)

func main() {
	configPath := flag.String("config", "", "optional configuration file for the tracker and mock source")
	flag.Parse()

	log.Println("starting accel-orientation (mock console)")

	if *configPath != "" {
		if err := config.InitGlobal(*configPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	if err := app.RunMockConsole(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
