package types

import "fmt"

// ReportID identifies a stored run report.
type ReportID string

// String returns the string form of the report identifier.
func (id ReportID) String() string { return string(id) }

// Fingerprint is a content digest of a Problem presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Short returns the first 12 characters of the fingerprint for display.
func (f Fingerprint) Short() string {
	if len(f) <= 12 {
		return string(f)
	}
	return string(f[:12])
}

// Strategy names a device matching strategy.
type Strategy string

const (
	// StrategyLinear scans the device list from smallest to largest for every mote.
	StrategyLinear Strategy = "linear"
	// StrategyIndexed binary-searches an ordered list of still-available devices.
	StrategyIndexed Strategy = "indexed"
)

// String returns the string form of the strategy.
func (s Strategy) String() string { return string(s) }

// ParseStrategy maps a user supplied name onto a Strategy. The empty string
// selects StrategyLinear.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyLinear:
		return StrategyLinear, nil
	case StrategyIndexed:
		return StrategyIndexed, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want %q or %q)", name, StrategyLinear, StrategyIndexed)
}
