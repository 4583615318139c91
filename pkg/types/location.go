package types

import (
	"fmt"
	"time"
)

// Location is a named container with a fixed number of bins.
// Locations are never deleted or renamed once created.
type Location struct {
	LocationID string    `json:"location_id"` // UUID v7, assigned on creation.
	Name       string    `json:"name"`        // Unique, case-insensitive.
	NumBins    int       `json:"num_bins"`    // Always >= 1.
	CreatedAt  time.Time `json:"created_at"`
}

// String renders the location the way the locations listing prints it.
// Single-bin locations print as a bare name.
func (l Location) String() string {
	if l.NumBins > 1 {
		return fmt.Sprintf("%s (%d bins)", l.Name, l.NumBins)
	}
	return l.Name
}
