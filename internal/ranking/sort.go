package ranking

import (
	"context"

	"golang.org/x/sync/errgroup"

	"containment/internal/domain"
)

// DefaultCutoff is the range length below which DescendingParallel stops
// spawning goroutines and sorts sequentially.
const DefaultCutoff = 4096

// Descending returns a copy of in ordered by non-increasing volume.
// The input slice is left untouched.
func Descending(in []domain.VolumeIndex) []domain.VolumeIndex {
	out := append([]domain.VolumeIndex(nil), in...)
	mergeSort(out)
	return out
}

// DescendingParallel is Descending with the two halves of every range longer
// than cutoff sorted concurrently. A cutoff below 2 selects DefaultCutoff.
func DescendingParallel(ctx context.Context, in []domain.VolumeIndex, cutoff int) ([]domain.VolumeIndex, error) {
	if cutoff < 2 {
		cutoff = DefaultCutoff
	}
	out := append([]domain.VolumeIndex(nil), in...)
	if err := parallelSort(ctx, out, cutoff); err != nil {
		return nil, err
	}
	return out, nil
}

// IsDescending reports whether vs is ordered by non-increasing volume.
func IsDescending(vs []domain.VolumeIndex) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i].Volume > vs[i-1].Volume {
			return false
		}
	}
	return true
}

func mergeSort(a []domain.VolumeIndex) {
	if len(a) < 2 {
		return
	}
	mid := (len(a) + 1) / 2
	mergeSort(a[:mid])
	mergeSort(a[mid:])
	merge(a, mid)
}

func parallelSort(ctx context.Context, a []domain.VolumeIndex, cutoff int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(a) <= cutoff {
		mergeSort(a)
		return nil
	}
	mid := (len(a) + 1) / 2
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return parallelSort(gctx, a[:mid], cutoff) })
	g.Go(func() error { return parallelSort(gctx, a[mid:], cutoff) })
	if err := g.Wait(); err != nil {
		return err
	}
	merge(a, mid)
	return nil
}

// merge combines the sorted runs a[:mid] and a[mid:] in place.
// On equal volume the left run goes first.
func merge(a []domain.VolumeIndex, mid int) {
	left := append([]domain.VolumeIndex(nil), a[:mid]...)
	right := append([]domain.VolumeIndex(nil), a[mid:]...)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i].Volume >= right[j].Volume {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
	}
	k += copy(a[k:], left[i:])
	copy(a[k:], right[j:])
}
