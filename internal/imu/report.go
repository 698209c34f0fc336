package imu

import (
	"time"

	"github.com/relabs-tech/accel_orientation/internal/orientation"
	"github.com/relabs-tech/accel_orientation/internal/vector"
)

// Report is what the producer publishes on every tick.
type Report struct {
	Time   time.Time `json:"time"`
	Source string    `json:"source"`

	Orientation orientation.Orientation `json:"orientation"`
	Last        orientation.Orientation `json:"last"`

	// smoothed acceleration in g
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`

	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
}

// NewReport snapshots a tracker after an update.
func NewReport(t time.Time, source string, tr *orientation.Tracker[float32]) Report {
	s := tr.Smoothed()
	pose := orientation.ComputePose(s)
	return Report{
		Time:        t,
		Source:      source,
		Orientation: tr.Current(),
		Last:        tr.LastOrientation(),
		X:           s.X,
		Y:           s.Y,
		Z:           s.Z,
		Roll:        pose.Roll,
		Pitch:       pose.Pitch,
	}
}

// Acceleration returns the smoothed acceleration carried by the report.
func (r Report) Acceleration() vector.F32x3 {
	return vector.NewXYZ(r.X, r.Y, r.Z)
}
