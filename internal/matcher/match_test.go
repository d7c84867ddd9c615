package matcher_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containment/internal/domain"
	"containment/internal/matcher"
	"containment/internal/ranking"
	"containment/internal/volume"
)

var strategies = []domain.Strategy{domain.StrategyLinear, domain.StrategyIndexed}

// solve runs the whole pipeline for raw radii and device triples.
func solve(t *testing.T, radii []int, boxes [][3]int, strategy domain.Strategy) matcher.Outcome {
	t.Helper()
	motes := make([]domain.Mote, len(radii))
	for i, r := range radii {
		motes[i] = domain.Mote{Radius: r}
	}
	devices := make([]domain.Device, len(boxes))
	for i, b := range boxes {
		devices[i] = domain.Device{Length: b[0], Width: b[1], Height: b[2]}
	}
	out, err := matcher.Match(context.Background(),
		ranking.Descending(volume.Motes(motes)),
		ranking.Descending(volume.Devices(devices)),
		strategy)
	require.NoError(t, err)
	return out
}

func TestFits_Tolerance(t *testing.T) {
	assert.True(t, matcher.Fits(8, 8))
	assert.True(t, matcher.Fits(8+5e-10, 8))
	assert.False(t, matcher.Fits(8+1e-8, 8))
	assert.True(t, matcher.Fits(0, 0))
}

func TestMatch_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		radii []int
		boxes [][3]int
		want  float64
	}{
		{"mote fits", []int{1}, [][3]int{{2, 2, 2}}, 0},
		{"mote too large", []int{5}, [][3]int{{1, 1, 1}}, volume.MoteVolume(5)},
		{"one device for two motes", []int{1, 1}, [][3]int{{10, 10, 10}}, volume.MoteVolume(1)},
		{"no motes", nil, [][3]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"no devices", []int{1, 2, 3}, nil, volume.MoteVolume(1) + volume.MoteVolume(2) + volume.MoteVolume(3)},
	}
	for _, tt := range tests {
		for _, s := range strategies {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				out := solve(t, tt.radii, tt.boxes, s)
				assert.InDelta(t, tt.want, out.Uncontained, 1e-9)
			})
		}
	}
}

func TestMatch_NoDevicesSumsExactly(t *testing.T) {
	radii := []int{3, 1, 2}
	out := solve(t, radii, nil, domain.StrategyLinear)

	// Summed in placement order: largest first.
	want := volume.MoteVolume(3) + volume.MoteVolume(2) + volume.MoteVolume(1)
	assert.Equal(t, want, out.Uncontained)
	assert.ElementsMatch(t, []int{0, 1, 2}, out.Unplaced)
	assert.Empty(t, out.Assignments)
}

func TestMatch_PicksSmallestSufficientDevice(t *testing.T) {
	// Devices 0..2 have volumes 27, 8, 1000; a radius-1 mote (≈4.19) should
	// take the volume-8 device and leave the others.
	out := solve(t, []int{1}, [][3]int{{3, 3, 3}, {2, 2, 2}, {10, 10, 10}}, domain.StrategyLinear)
	require.Len(t, out.Assignments, 1)
	assert.Equal(t, 1, out.Assignments[0].Device)
	assert.Equal(t, 0, out.Assignments[0].Mote)
}

func TestMatch_LargestMoteFirst(t *testing.T) {
	// Only one device of volume 125: the radius-2 mote (≈33.5) wins it over
	// the radius-1 mote.
	out := solve(t, []int{1, 2}, [][3]int{{5, 5, 5}}, domain.StrategyLinear)
	require.Len(t, out.Assignments, 1)
	assert.Equal(t, 1, out.Assignments[0].Mote)
	assert.Equal(t, []int{0}, out.Unplaced)
	assert.InDelta(t, volume.MoteVolume(1), out.Uncontained, 1e-12)
}

func TestMatch_ToleranceBoundary(t *testing.T) {
	v := volume.MoteVolume(2)
	motes := []domain.VolumeIndex{{Volume: v, Index: 0}}

	for _, s := range strategies {
		devices := []domain.VolumeIndex{{Volume: v - 5e-10, Index: 0}}
		out, err := matcher.Match(context.Background(), motes, devices, s)
		require.NoError(t, err)
		assert.Zero(t, out.Uncontained, s)

		devices = []domain.VolumeIndex{{Volume: v - 1e-6, Index: 0}}
		out, err = matcher.Match(context.Background(), motes, devices, s)
		require.NoError(t, err)
		assert.Equal(t, v, out.Uncontained, s)
	}
}

func TestMatch_UnknownStrategy(t *testing.T) {
	_, err := matcher.Match(context.Background(), nil, nil, domain.Strategy("best"))
	assert.Error(t, err)
}

func TestMatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := matcher.Match(ctx, []domain.VolumeIndex{{Volume: 1}}, nil, domain.StrategyLinear)
	assert.ErrorIs(t, err, context.Canceled)
}

func randomInstance(r *rand.Rand) ([]int, [][3]int) {
	radii := make([]int, r.Intn(40))
	for i := range radii {
		radii[i] = r.Intn(6)
	}
	boxes := make([][3]int, r.Intn(40))
	for i := range boxes {
		boxes[i] = [3]int{r.Intn(10), r.Intn(10), r.Intn(10)}
	}
	return radii, boxes
}

func TestMatch_StrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		radii, boxes := randomInstance(r)
		linear := solve(t, radii, boxes, domain.StrategyLinear)
		indexed := solve(t, radii, boxes, domain.StrategyIndexed)
		require.Equal(t, linear, indexed, "radii=%v boxes=%v", radii, boxes)
	}
}

func TestMatch_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		radii, boxes := randomInstance(r)
		out := solve(t, radii, boxes, domain.StrategyLinear)

		var total float64
		for _, rad := range radii {
			total += volume.MoteVolume(rad)
		}
		assert.GreaterOrEqual(t, out.Uncontained, 0.0)
		assert.LessOrEqual(t, out.Uncontained, total+1e-6)
		assert.Equal(t, len(radii), len(out.Assignments)+len(out.Unplaced))

		seen := make(map[int]bool)
		for _, a := range out.Assignments {
			require.False(t, seen[a.Device], "device %d claimed twice", a.Device)
			seen[a.Device] = true
			assert.True(t, matcher.Fits(a.MoteVolume, a.DeviceVolume))
		}
	}
}

func TestMatch_AddingLargeDeviceNeverHurts(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 200; i++ {
		radii, boxes := randomInstance(r)
		before := solve(t, radii, boxes, domain.StrategyLinear)
		if len(before.Unplaced) == 0 {
			continue
		}

		var largest float64
		for _, idx := range before.Unplaced {
			largest = max(largest, volume.MoteVolume(radii[idx]))
		}
		side := 1
		for volume.DeviceVolume(side, side, side) < largest {
			side++
		}

		after := solve(t, radii, append(boxes, [3]int{side, side, side}), domain.StrategyLinear)
		assert.LessOrEqual(t, after.Uncontained, before.Uncontained+1e-9)
	}
}
