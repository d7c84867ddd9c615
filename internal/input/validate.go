package input

import "containment/internal/domain"

// Validate applies the text parser's checks to an already decoded problem.
func Validate(p domain.Problem, limit int) error {
	if limit <= 0 {
		limit = DefaultMaxEntities
	}
	if err := checkLimits(len(p.Motes), len(p.Devices), limit); err != nil {
		return err
	}
	for i, m := range p.Motes {
		if m.Radius < 0 {
			return &InputError{Field: "mote radius", Position: i + 1, Err: ErrNegative}
		}
	}
	for i, d := range p.Devices {
		if d.Length < 0 || d.Width < 0 || d.Height < 0 {
			return &InputError{Field: "device dimension", Position: i + 1, Err: ErrNegative}
		}
	}
	return nil
}
