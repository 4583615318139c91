package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

func TestAddLocation(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, store *Store)
	}{
		{
			name: "add assigns an id and persists",
			check: func(t *testing.T, store *Store) {
				loc, err := store.AddLocation("Test", 4)
				require.NoError(t, err)
				assert.NotEmpty(t, loc.LocationID)

				got, err := store.LocationByID(loc.LocationID)
				require.NoError(t, err)
				assert.Equal(t, "Test", got.Name)
				assert.Equal(t, 4, got.NumBins)
			},
		},
		{
			name: "duplicate name fails",
			check: func(t *testing.T, store *Store) {
				_, err := store.AddLocation("Test", 4)
				require.NoError(t, err)

				_, err = store.AddLocation("Test", 2)
				assert.ErrorIs(t, err, types.ErrDuplicateLocation)
			},
		},
		{
			name: "duplicate check is case-insensitive",
			check: func(t *testing.T, store *Store) {
				_, err := store.AddLocation("Test", 4)
				require.NoError(t, err)

				_, err = store.AddLocation("TEST", 2)
				assert.ErrorIs(t, err, types.ErrDuplicateLocation)
			},
		},
		{
			name: "zero bins rejected",
			check: func(t *testing.T, store *Store) {
				_, err := store.AddLocation("Zero", 0)
				assert.ErrorIs(t, err, types.ErrInvalidBinNumber)
			},
		},
		{
			name: "negative bins rejected",
			check: func(t *testing.T, store *Store) {
				_, err := store.AddLocation("Negative", -1)
				assert.ErrorIs(t, err, types.ErrInvalidBinNumber)
			},
		},
		{
			name: "empty name rejected",
			check: func(t *testing.T, store *Store) {
				_, err := store.AddLocation("  ", 4)
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
		{
			name: "failed add leaves the journal untouched",
			check: func(t *testing.T, store *Store) {
				_, err := store.AddLocation("Zero", 0)
				require.Error(t, err)

				n, err := store.JournalLen()
				require.NoError(t, err)
				assert.Zero(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}

func TestLocationsSortedByName(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"Tiny", "Huge", "Test"} {
		_, err := store.AddLocation(name, 2)
		require.NoError(t, err)
	}

	locs, err := store.Locations()
	require.NoError(t, err)

	names := make([]string, 0, len(locs))
	for _, loc := range locs {
		names = append(names, loc.Name)
	}
	assert.Equal(t, []string{"Huge", "Test", "Tiny"}, names)
}

func TestLocationsReadIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	populate(t, store)

	first, err := store.Locations()
	require.NoError(t, err)
	second, err := store.Locations()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLocationByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LocationByID("no-such-id")
	assert.ErrorIs(t, err, types.ErrLocationNotFound)
}
