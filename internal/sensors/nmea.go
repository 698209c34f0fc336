// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	nmea "github.com/adrianmo/go-nmea"
)

// TypeACC is the sentence type of an accelerometer reading:
//
//	$IIACC,<x>,<y>,<z>*CS
//
// with each axis in g.
const TypeACC = "ACC"

// ACC is one accelerometer reading from a serial feed.
type ACC struct {
	nmea.BaseSentence
	X float64
	Y float64
	Z float64
}

func parseACC(s nmea.BaseSentence) (nmea.Sentence, error) {
	p := nmea.NewParser(s)
	p.AssertType(TypeACC)
	m := ACC{
		BaseSentence: s,
		X:            p.Float64(0, "x"),
		Y:            p.Float64(1, "y"),
		Z:            p.Float64(2, "z"),
	}
	return m, p.Err()
}

// newSentenceParser returns a parser that understands ACC on top of the
// standard sentences, without touching the package-level registry.
func newSentenceParser() *nmea.SentenceParser {
	return &nmea.SentenceParser{
		CustomParsers: map[string]nmea.ParserFunc{
			TypeACC: parseACC,
		},
	}
}
