// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"github.com/relabs-tech/accel_orientation/internal/fastmath"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// Pose is the tilt of the device in degrees.
type Pose struct {
	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
}

const radToDeg = 180 / fastmath.Pi

// ComputePose estimates roll and pitch from a gravity vector in any unit:
//
//	roll  = atan2(ay, az)
//	pitch = atan2(-ax, sqrt(ay² + az²))
//
// Yaw is not observable from the accelerometer alone.
func ComputePose(a vector.F32x3) Pose {
	roll := fastmath.Atan2Approx(a.Y, a.Z)
	pitch := fastmath.Atan2Approx(-a.X, fastmath.Sqrt(a.Y*a.Y+a.Z*a.Z))
	return Pose{
		Roll:  roll * radToDeg,
		Pitch: pitch * radToDeg,
	}
}
