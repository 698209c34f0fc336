// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
	serial "github.com/jacobsa/go-serial/serial"

	"github.com/relabs-tech/accel_orientation/internal/accel"
	"github.com/relabs-tech/accel_orientation/internal/config"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// Serial reads ACC sentences from a line-oriented accelerometer feed.
type Serial struct {
	name   string
	port   io.Closer
	reader *bufio.Reader
	parser *nmea.SentenceParser
}

// OpenSerial opens the configured serial port.
func OpenSerial(name string, cfg config.SerialConfig) (*Serial, error) {
	opts := serial.OpenOptions{
		PortName:              cfg.Port,
		BaudRate:              cfg.BaudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}
	port, err := serial.Open(opts)
	if err != nil {
		return nil, accel.FromCause(fmt.Errorf("%s serial: open %s: %w", name, cfg.Port, err))
	}
	log.Printf("%s serial: opened %s at %d baud", name, cfg.Port, cfg.BaudRate)
	return newSerial(name, port), nil
}

func newSerial(name string, r io.Reader) *Serial {
	s := &Serial{
		name:   name,
		reader: bufio.NewReader(r),
		parser: newSentenceParser(),
	}
	if c, ok := r.(io.Closer); ok {
		s.port = c
	}
	return s
}

// Acceleration returns the next ACC reading on the line. Other sentences
// and blank lines are skipped. A malformed ACC sentence is a device error;
// a failed read, including EOF, is a bus error.
func (s *Serial) Acceleration() (vector.F32x3, error) {
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return vector.F32x3{}, accel.FromCause(fmt.Errorf("%s serial: read: %w", s.name, err))
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "$") {
			continue
		}

		sentence, perr := s.parser.Parse(line)
		if perr != nil {
			if isACC(line) {
				return vector.F32x3{}, accel.NewWithCause(accel.KindDevice,
					fmt.Errorf("%s serial: %w", s.name, perr))
			}
			continue
		}

		m, ok := sentence.(ACC)
		if !ok {
			continue
		}
		return vector.NewXYZ(float32(m.X), float32(m.Y), float32(m.Z)), nil
	}
}

// isACC reports whether line carries an ACC sentence from any talker.
func isACC(line string) bool {
	return len(line) >= 6 && line[3:6] == TypeACC
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}
