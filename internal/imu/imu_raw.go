package imu

import "github.com/relabs-tech/accel_orientation/internal/vector"

// AccelRaw is a single raw accelerometer sample in device counts.
type AccelRaw struct {
	Source string `json:"source"` // "left" or "right"

	Ax int16 `json:"ax"`
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`
}

// NewAccelRaw builds the payload for a raw sample.
func NewAccelRaw(source string, v vector.I16x3) AccelRaw {
	return AccelRaw{Source: source, Ax: v.X, Ay: v.Y, Az: v.Z}
}

// Vector returns the sample as a vector.
func (r AccelRaw) Vector() vector.I16x3 {
	return vector.NewXYZ(r.Ax, r.Ay, r.Az)
}
