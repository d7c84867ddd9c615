package types

import "time"

// Assignment records that the mote at input position Mote was placed into the
// device at input position Device.
type Assignment struct {
	Mote         int     `json:"mote" yaml:"mote"`
	Device       int     `json:"device" yaml:"device"`
	MoteVolume   float64 `json:"mote_volume" yaml:"mote_volume"`
	DeviceVolume float64 `json:"device_volume" yaml:"device_volume"`
}

// Result is the outcome of a single containment run.
type Result struct {
	// Uncontained is the total volume of motes that found no device.
	Uncontained float64 `json:"uncontained" yaml:"uncontained"`

	// Assignments lists placed motes in placement order (largest mote first).
	Assignments []Assignment `json:"assignments" yaml:"assignments"`

	// Unplaced holds the input positions of motes that found no device.
	Unplaced []int `json:"unplaced" yaml:"unplaced"`

	Strategy Strategy `json:"strategy" yaml:"strategy"`
}

// Report is a persisted record of a run.
type Report struct {
	ID          ReportID    `json:"id" yaml:"id"`
	Fingerprint Fingerprint `json:"fingerprint" yaml:"fingerprint"`
	CreatedAt   time.Time   `json:"created_at" yaml:"created_at"`
	Motes       int         `json:"motes" yaml:"motes"`
	Devices     int         `json:"devices" yaml:"devices"`
	Result      Result      `json:"result" yaml:"result"`
}
