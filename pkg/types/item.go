package types

import (
	"fmt"
	"time"
)

// Item is a physical thing stored in one bin of one location.
type Item struct {
	ItemID    string    `json:"item_id"` // UUID v7; empty until persisted.
	Location  Location  `json:"location"`
	BinNo     int       `json:"bin_no"` // Always in [1, Location.NumBins].
	Name      string    `json:"name"`   // Non-empty.
	Size      Size      `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Spot renders the item's position as "Location/bin", contracting to the
// bare location name when the location has a single bin.
func (i Item) Spot() string {
	if i.Location.NumBins > 1 {
		return fmt.Sprintf("%s/%d", i.Location.Name, i.BinNo)
	}
	return i.Location.Name
}

// String renders the item the way add and the items listing print it:
// "Location/bin: name (size)".
func (i Item) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Spot(), i.Name, i.Size)
}

// ItemPatch is a partial update to an item. Nil fields are left unchanged.
type ItemPatch struct {
	LocationID *string `json:"location_id,omitempty"`
	BinNo      *int    `json:"bin_no,omitempty"`
	Name       *string `json:"name,omitempty"`
	Size       *Size   `json:"size,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return p.LocationID == nil && p.BinNo == nil && p.Name == nil && p.Size == nil
}
