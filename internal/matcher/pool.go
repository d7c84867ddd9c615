package matcher

import (
	"fmt"
	"slices"
	"sort"

	"containment/internal/domain"
)

// Tolerance is the absolute slack allowed when comparing a mote volume to a
// device volume.
const Tolerance = 1e-9

// Fits reports whether a mote of volume mote fits a device of volume device.
func Fits(mote, device float64) bool {
	return mote <= device+Tolerance
}

// Pool hands out unused devices to motes.
type Pool interface {
	// Claim marks the smallest unused device that fits moteVolume as used
	// and returns it. ok is false when no unused device fits.
	Claim(moteVolume float64) (device domain.VolumeIndex, ok bool)
	// Remaining returns how many devices are still unused.
	Remaining() int
}

// NewPool builds a Pool over devices, which must be sorted by
// non-increasing volume.
func NewPool(devices []domain.VolumeIndex, strategy domain.Strategy) (Pool, error) {
	switch strategy {
	case domain.StrategyLinear, "":
		return &linearPool{devices: devices, used: make([]bool, len(devices)), remaining: len(devices)}, nil
	case domain.StrategyIndexed:
		asc := make([]domain.VolumeIndex, len(devices))
		for i, d := range devices {
			asc[len(devices)-1-i] = d
		}
		return &indexedPool{available: asc}, nil
	}
	return nil, fmt.Errorf("matcher: unknown strategy %q", strategy)
}

type linearPool struct {
	devices   []domain.VolumeIndex
	used      []bool
	remaining int
}

func (p *linearPool) Claim(moteVolume float64) (domain.VolumeIndex, bool) {
	for j := len(p.devices) - 1; j >= 0; j-- {
		if !p.used[j] && Fits(moteVolume, p.devices[j].Volume) {
			p.used[j] = true
			p.remaining--
			return p.devices[j], true
		}
	}
	return domain.VolumeIndex{}, false
}

func (p *linearPool) Remaining() int { return p.remaining }

// indexedPool holds the unused devices in ascending volume order, which is
// the linear pool's scan order with claimed devices removed.
type indexedPool struct {
	available []domain.VolumeIndex
}

func (p *indexedPool) Claim(moteVolume float64) (domain.VolumeIndex, bool) {
	i := sort.Search(len(p.available), func(i int) bool {
		return Fits(moteVolume, p.available[i].Volume)
	})
	if i == len(p.available) {
		return domain.VolumeIndex{}, false
	}
	d := p.available[i]
	p.available = slices.Delete(p.available, i, i+1)
	return d, true
}

func (p *indexedPool) Remaining() int { return len(p.available) }
