package types

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error taxonomy. Mutating operations detect these before any
// persisted state changes; the CLI prints them as one-line errors and the
// HTTP layer maps them to status codes.
var (
	ErrUnknownLocation   = errors.New("unknown location")
	ErrAmbiguousLocation = errors.New("ambiguous location")
	ErrDuplicateLocation = errors.New("duplicate location")
	ErrBinOutOfRange     = errors.New("bin out of range")
	ErrLocationHasNoBins = errors.New("location has no bins")
	ErrItemNotFound      = errors.New("item not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrInvalidName       = errors.New("name must not be empty")
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidBinNumber  = errors.New("bin number must be greater than zero")
)

// UnknownLocationError wraps ErrUnknownLocation with the fragment the user
// typed, so the message quotes what failed to resolve.
func UnknownLocationError(fragment string) error {
	return fmt.Errorf("location name %q did not match any location: %w", fragment, ErrUnknownLocation)
}

// AmbiguousLocationError wraps ErrAmbiguousLocation with the equally ranked
// candidate names.
func AmbiguousLocationError(fragment string, candidates []string) error {
	return fmt.Errorf("location name %q matched several locations (%s): %w",
		fragment, strings.Join(candidates, ", "), ErrAmbiguousLocation)
}

// BinOutOfRangeError wraps ErrBinOutOfRange with the location's capacity.
func BinOutOfRangeError(locationName string, numBins int) error {
	return fmt.Errorf("location %s only has %d bins: %w", locationName, numBins, ErrBinOutOfRange)
}
