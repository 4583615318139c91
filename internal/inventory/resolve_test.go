package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

func testLocations(names ...string) []types.Location {
	locs := make([]types.Location, 0, len(names))
	for i, name := range names {
		locs = append(locs, types.Location{
			LocationID: name + "-id",
			Name:       name,
			NumBins:    i + 1,
		})
	}
	return locs
}

func TestResolve_ExactCaseInsensitiveMatchWins(t *testing.T) {
	r := NewResolver()
	locs := testLocations("Test", "Tent", "Huge")

	tests := []struct {
		fragment string
		want     string
	}{
		{fragment: "Test", want: "Test"},
		{fragment: "test", want: "Test"},
		{fragment: "TEST", want: "Test"},
		{fragment: "hUgE", want: "Huge"},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			got, err := r.Resolve(tt.fragment, locs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestResolve_FuzzySingleCandidate(t *testing.T) {
	r := NewResolver()
	locs := testLocations("Test", "Tiny", "Huge")

	got, err := r.Resolve("tst", locs)
	require.NoError(t, err)
	assert.Equal(t, "Test", got.Name)
}

func TestResolve_UnknownLocation(t *testing.T) {
	r := NewResolver()
	locs := testLocations("Test", "Tiny", "Huge")

	_, err := r.Resolve("Nonexistent", locs)
	require.ErrorIs(t, err, types.ErrUnknownLocation)
	assert.Contains(t, err.Error(), `"Nonexistent"`)
}

func TestResolve_AmbiguousLocation(t *testing.T) {
	r := NewResolver()
	locs := testLocations("Test", "Tent")

	_, err := r.Resolve("Te", locs)
	require.ErrorIs(t, err, types.ErrAmbiguousLocation)
	assert.Contains(t, err.Error(), "Test")
	assert.Contains(t, err.Error(), "Tent")
}

func TestResolve_NoLocations(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve("anything", nil)
	assert.ErrorIs(t, err, types.ErrUnknownLocation)
}

// fixedMatcher returns canned ranks, so the resolver's ambiguity policy can
// be exercised independently of the fuzzy matching heuristic.
type fixedMatcher struct {
	matches []Match
}

func (m fixedMatcher) BestMatches(query string, candidates []string) []Match {
	return m.matches
}

func TestResolve_MatcherStrategy(t *testing.T) {
	locs := testLocations("Alpha", "Beta", "Gamma")

	tests := []struct {
		name    string
		matches []Match
		want    string
		wantErr error
	}{
		{
			name:    "no candidates is unknown",
			matches: nil,
			wantErr: types.ErrUnknownLocation,
		},
		{
			name:    "single candidate wins",
			matches: []Match{{Name: "Beta", Rank: 2}},
			want:    "Beta",
		},
		{
			name:    "strictly best rank wins",
			matches: []Match{{Name: "Alpha", Rank: 3}, {Name: "Beta", Rank: 1}},
			want:    "Beta",
		},
		{
			name:    "equal ranks are ambiguous",
			matches: []Match{{Name: "Alpha", Rank: 2}, {Name: "Gamma", Rank: 2}},
			wantErr: types.ErrAmbiguousLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolverWith(fixedMatcher{matches: tt.matches})

			got, err := r.Resolve("query", locs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}
