package types

import (
	"encoding/json"
	"fmt"
)

// Mote is a sphere described by its integer radius.
type Mote struct {
	Radius int
}

// MarshalJSON encodes a mote as its bare radius.
func (m Mote) MarshalJSON() ([]byte, error) { return json.Marshal(m.Radius) }

// UnmarshalJSON mirrors MarshalJSON.
func (m *Mote) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.Radius)
}

// Device is a box-shaped container described by three integer dimensions.
type Device struct {
	Length int
	Width  int
	Height int
}

// MarshalJSON encodes a device as a [length, width, height] triple.
func (d Device) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{d.Length, d.Width, d.Height})
}

// UnmarshalJSON mirrors MarshalJSON.
func (d *Device) UnmarshalJSON(data []byte) error {
	var dims []int
	if err := json.Unmarshal(data, &dims); err != nil {
		return err
	}
	if len(dims) != 3 {
		return fmt.Errorf("device: want 3 dimensions, got %d", len(dims))
	}
	d.Length, d.Width, d.Height = dims[0], dims[1], dims[2]
	return nil
}

// Problem is one containment instance: the motes to place and the devices
// available to hold them.
type Problem struct {
	Motes   []Mote   `json:"motes"`
	Devices []Device `json:"devices"`
}

// VolumeIndex pairs a derived volume with the entity's position in its input
// collection so provenance survives sorting.
type VolumeIndex struct {
	Volume float64
	Index  int
}
