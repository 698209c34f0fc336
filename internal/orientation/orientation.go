// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package orientation classifies accelerometer readings into coarse device
// orientations and tracks the last one seen.
package orientation

import "fmt"

// Orientation is the device orientation derived from the gravity vector.
type Orientation int

const (
	// Unknown means no axis carried enough acceleration to decide.
	Unknown Orientation = iota
	PortraitUp
	PortraitDown
	LandscapeUp
	LandscapeDown
	// FaceUp is flat on its back, screen towards the sky.
	FaceUp
	FaceDown
)

var names = [...]string{
	Unknown:       "unknown",
	PortraitUp:    "portrait_up",
	PortraitDown:  "portrait_down",
	LandscapeUp:   "landscape_up",
	LandscapeDown: "landscape_down",
	FaceUp:        "face_up",
	FaceDown:      "face_down",
}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(names) {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return names[o]
}

// ParseOrientation is the inverse of String.
func ParseOrientation(s string) (Orientation, error) {
	for i, n := range names {
		if n == s {
			return Orientation(i), nil
		}
	}
	return Unknown, fmt.Errorf("orientation: unknown name %q", s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(names) {
		return nil, fmt.Errorf("orientation: invalid value %d", int(o))
	}
	return []byte(names[o]), nil
}

func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o Orientation) IsFlat() bool { return o == FaceUp || o == FaceDown }

func (o Orientation) IsLandscape() bool { return o == LandscapeUp || o == LandscapeDown }

func (o Orientation) IsPortrait() bool { return o == PortraitUp || o == PortraitDown }

// Classify maps a gravity reading to an orientation. Axes are tested in the
// order X, Y, Z and the first whose magnitude exceeds threshold wins, so a
// reading strong on both X and Y is landscape. A non-negative component
// counts as up.
func Classify(x, y, z, threshold float32) Orientation {
	switch {
	case abs(x) > threshold:
		if x >= 0 {
			return LandscapeUp
		}
		return LandscapeDown
	case abs(y) > threshold:
		if y >= 0 {
			return PortraitUp
		}
		return PortraitDown
	case abs(z) > threshold:
		if z >= 0 {
			return FaceUp
		}
		return FaceDown
	default:
		return Unknown
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
