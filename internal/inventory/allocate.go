// Package inventory holds the allocation and undo engine glue: bin choice,
// location resolution, and batch ingestion. Persistence lives in
// internal/sqlite; everything here is deterministic over its inputs.
package inventory

import (
	"github.com/mesh-intelligence/hutch/pkg/types"
)

// ChooseBin picks the bin for a new item in loc.
//
// When requested is non-nil it is validated against [1, loc.NumBins] and
// returned; loads are not consulted. Otherwise the bin with the minimum
// total load wins, ties broken by the smallest bin index, so identical
// inputs always allocate identically.
func ChooseBin(loc types.Location, requested *int, loads map[int]int) (int, error) {
	if requested != nil {
		if *requested < 1 || *requested > loc.NumBins {
			return 0, types.BinOutOfRangeError(loc.Name, loc.NumBins)
		}
		return *requested, nil
	}

	if loc.NumBins < 1 {
		return 0, types.ErrLocationHasNoBins
	}

	best := 1
	for bin := 2; bin <= loc.NumBins; bin++ {
		if loads[bin] < loads[best] {
			best = bin
		}
	}
	return best, nil
}
