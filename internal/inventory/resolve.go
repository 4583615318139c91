package inventory

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

// Match is one ranked candidate from a Matcher. Lower ranks are better.
type Match struct {
	Name string
	Rank int
}

// Matcher ranks candidate names against a query. Implementations must be
// pure functions of their arguments.
type Matcher interface {
	BestMatches(query string, candidates []string) []Match
}

// maxFuzzyRank is the similarity threshold: candidates whose rank exceeds
// it are treated as non-matches.
const maxFuzzyRank = 3

// fuzzyMatcher ranks by case-folded fuzzy matching with Levenshtein
// distance as the rank.
type fuzzyMatcher struct{}

func (fuzzyMatcher) BestMatches(query string, candidates []string) []Match {
	ranks := fuzzy.RankFindNormalizedFold(query, candidates)

	matches := make([]Match, 0, len(ranks))
	for _, r := range ranks {
		if r.Distance > maxFuzzyRank {
			continue
		}
		matches = append(matches, Match{Name: r.Target, Rank: r.Distance})
	}
	return matches
}

// Resolver maps user-typed name fragments to canonical locations.
// The zero value is not usable; call NewResolver.
type Resolver struct {
	matcher Matcher
}

// NewResolver returns a resolver with the default fuzzy matcher.
func NewResolver() Resolver {
	return Resolver{matcher: fuzzyMatcher{}}
}

// NewResolverWith returns a resolver using a custom matching strategy.
func NewResolverWith(m Matcher) Resolver {
	return Resolver{matcher: m}
}

// Resolve maps fragment to exactly one of locations. An exact
// case-insensitive name match wins immediately; otherwise the matcher ranks
// all names and a single best-ranked candidate inside the threshold wins.
// No candidates fails with ErrUnknownLocation; several equally good
// candidates fail with ErrAmbiguousLocation, listing them.
func (r Resolver) Resolve(fragment string, locations []types.Location) (types.Location, error) {
	byName := make(map[string]types.Location, len(locations))
	names := make([]string, 0, len(locations))
	for _, loc := range locations {
		if strings.EqualFold(loc.Name, fragment) {
			return loc, nil
		}
		byName[loc.Name] = loc
		names = append(names, loc.Name)
	}

	matches := r.matcher.BestMatches(fragment, names)
	if len(matches) == 0 {
		return types.Location{}, types.UnknownLocationError(fragment)
	}

	best := matches[0].Rank
	for _, m := range matches[1:] {
		if m.Rank < best {
			best = m.Rank
		}
	}

	var winners []string
	for _, m := range matches {
		if m.Rank == best {
			winners = append(winners, m.Name)
		}
	}
	if len(winners) > 1 {
		return types.Location{}, types.AmbiguousLocationError(fragment, winners)
	}
	return byName[winners[0]], nil
}
