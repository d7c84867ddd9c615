// Package volume converts motes and devices into comparable volumes.
package volume

import (
	"math"

	"containment/internal/domain"
)

// MoteVolume returns the volume of a sphere of the given radius.
func MoteVolume(radius int) float64 {
	return (4.0 / 3.0) * math.Pi * math.Pow(float64(radius), 3)
}

// DeviceVolume returns the volume of a box with the given dimensions.
func DeviceVolume(length, width, height int) float64 {
	return float64(length) * float64(width) * float64(height)
}

// Motes tags every mote volume with its input position.
func Motes(motes []domain.Mote) []domain.VolumeIndex {
	out := make([]domain.VolumeIndex, len(motes))
	for i, m := range motes {
		out[i] = domain.VolumeIndex{Volume: MoteVolume(m.Radius), Index: i}
	}
	return out
}

// Devices tags every device volume with its input position.
func Devices(devices []domain.Device) []domain.VolumeIndex {
	out := make([]domain.VolumeIndex, len(devices))
	for i, d := range devices {
		out[i] = domain.VolumeIndex{Volume: DeviceVolume(d.Length, d.Width, d.Height), Index: i}
	}
	return out
}

// Sum adds up the volumes in vs.
func Sum(vs []domain.VolumeIndex) float64 {
	var total float64
	for _, v := range vs {
		total += v.Volume
	}
	return total
}
