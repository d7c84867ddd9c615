package matcher

import (
	"context"

	"containment/internal/domain"
)

// checkEvery is how many motes are placed between context checks.
const checkEvery = 1024

// Outcome is the aggregate result of a matching pass.
type Outcome struct {
	Uncontained float64
	Assignments []domain.Assignment
	Unplaced    []int
}

// Match walks motes (sorted by non-increasing volume) and places each into
// the smallest fitting device from devices (also sorted by non-increasing
// volume). The pass stops early only if ctx is cancelled.
func Match(ctx context.Context, motes, devices []domain.VolumeIndex, strategy domain.Strategy) (Outcome, error) {
	pool, err := NewPool(devices, strategy)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Assignments: make([]domain.Assignment, 0, min(len(motes), len(devices))),
		Unplaced:    []int{},
	}
	for i, m := range motes {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Outcome{}, err
			}
		}
		d, ok := pool.Claim(m.Volume)
		if !ok {
			out.Uncontained += m.Volume
			out.Unplaced = append(out.Unplaced, m.Index)
			continue
		}
		out.Assignments = append(out.Assignments, domain.Assignment{
			Mote:         m.Index,
			Device:       d.Index,
			MoteVolume:   m.Volume,
			DeviceVolume: d.Volume,
		})
	}
	return out, nil
}
