package containment_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containment/internal/domain"
	"containment/internal/services/containment"
	"containment/internal/volume"
)

func motes(radii ...int) []domain.Mote {
	out := make([]domain.Mote, len(radii))
	for i, r := range radii {
		out[i] = domain.Mote{Radius: r}
	}
	return out
}

func cube(side int) domain.Device {
	return domain.Device{Length: side, Width: side, Height: side}
}

func TestSolve_ExampleScenarios(t *testing.T) {
	tests := []struct {
		name    string
		problem domain.Problem
		want    string
	}{
		{"fits", domain.Problem{Motes: motes(1), Devices: []domain.Device{cube(2)}}, "0.000000"},
		{"too large", domain.Problem{Motes: motes(5), Devices: []domain.Device{cube(1)}}, "523.598776"},
		{"one claim per device", domain.Problem{Motes: motes(1, 1), Devices: []domain.Device{cube(10)}}, "4.188790"},
		{"no motes", domain.Problem{Devices: []domain.Device{cube(1), cube(2), cube(3)}}, "0.000000"},
		{"no devices", domain.Problem{Motes: motes(1, 2, 3)}, fmt.Sprintf("%.6f",
			volume.MoteVolume(3)+volume.MoteVolume(2)+volume.MoteVolume(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := containment.New(nil, containment.Options{}).Solve(context.Background(), tt.problem)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fmt.Sprintf("%.6f", res.Uncontained))
			assert.Equal(t, domain.StrategyLinear, res.Strategy)
		})
	}
}

func TestSolve_ParallelAndIndexedAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	p := domain.Problem{}
	for i := 0; i < 3000; i++ {
		p.Motes = append(p.Motes, domain.Mote{Radius: r.Intn(12)})
		p.Devices = append(p.Devices, domain.Device{Length: r.Intn(20), Width: r.Intn(20), Height: r.Intn(20)})
	}

	ref, err := containment.New(nil, containment.Options{}).Solve(context.Background(), p)
	require.NoError(t, err)

	variants := []containment.Options{
		{Strategy: domain.StrategyIndexed},
		{Strategy: domain.StrategyLinear, ParallelCutoff: 64},
		{Strategy: domain.StrategyIndexed, ParallelCutoff: 64},
	}
	for _, opts := range variants {
		got, err := containment.New(nil, opts).Solve(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, ref.Uncontained, got.Uncontained, "%+v", opts)
		assert.Equal(t, ref.Assignments, got.Assignments, "%+v", opts)
		assert.Equal(t, ref.Unplaced, got.Unplaced, "%+v", opts)
	}
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := containment.New(nil, containment.Options{ParallelCutoff: 2})
	_, err := svc.Solve(ctx, domain.Problem{Motes: motes(1, 2, 3)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_UnknownStrategy(t *testing.T) {
	svc := containment.New(nil, containment.Options{Strategy: "worst"})
	_, err := svc.Solve(context.Background(), domain.Problem{Motes: motes(1)})
	assert.Error(t, err)
}
