package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Target is a user-supplied "LOCATION" or "LOCATION/BIN" argument.
// The location part is a name fragment, not necessarily canonical.
type Target struct {
	Location string
	Bin      *int // nil when the bin should be auto-allocated.
}

// ParseTarget parses a LOCATION[/BIN] argument.
func ParseTarget(s string) (Target, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		return Target{Location: parts[0]}, nil
	case 2:
		bin, err := ParseBinNumber(parts[1])
		if err != nil {
			return Target{}, err
		}
		return Target{Location: parts[0], Bin: &bin}, nil
	default:
		return Target{}, fmt.Errorf("target must be in format LOCATION or LOCATION/BIN, got %q", s)
	}
}

// ParseBinNumber parses a positive bin number.
func ParseBinNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse bin number %q: %w", s, err)
	}
	if n <= 0 {
		return 0, ErrInvalidBinNumber
	}
	return n, nil
}

// String renders the target the way the quickadd prompt shows it.
func (t Target) String() string {
	if t.Bin != nil {
		return fmt.Sprintf("%s/%d", t.Location, *t.Bin)
	}
	return t.Location
}
