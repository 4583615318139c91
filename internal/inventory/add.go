package inventory

import (
	"github.com/mesh-intelligence/hutch/internal/sqlite"
	"github.com/mesh-intelligence/hutch/pkg/types"
)

// AddItem creates an item in loc, choosing the least-loaded bin when
// requested is nil. This is the single mutation path shared by add,
// quickadd, and the HTTP API: resolve happened upstream, allocation and the
// journaled write happen here.
func AddItem(store *sqlite.Store, loc types.Location, requested *int, name string, size types.Size) (types.Item, error) {
	var loads map[int]int
	if requested == nil {
		var err error
		loads, err = store.BinLoads(loc.LocationID)
		if err != nil {
			return types.Item{}, err
		}
	}

	bin, err := ChooseBin(loc, requested, loads)
	if err != nil {
		return types.Item{}, err
	}

	return store.AddItem(loc.LocationID, bin, name, size)
}

// NextBin reports the bin a new item would be auto-allocated to, without
// mutating anything.
func NextBin(store *sqlite.Store, loc types.Location) (int, error) {
	loads, err := store.BinLoads(loc.LocationID)
	if err != nil {
		return 0, err
	}
	return ChooseBin(loc, nil, loads)
}
