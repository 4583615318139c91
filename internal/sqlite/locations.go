package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

// AddLocation creates a location and journals its removal as the inverse.
// Fails with ErrDuplicateLocation when a case-insensitive name match exists,
// leaving both the data and the journal untouched.
func (s *Store) AddLocation(name string, numBins int) (types.Location, error) {
	if strings.TrimSpace(name) == "" {
		return types.Location{}, types.ErrInvalidName
	}
	if numBins < 1 {
		return types.Location{}, fmt.Errorf("location %q: %w", name, types.ErrInvalidBinNumber)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return types.Location{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRow(
		"SELECT name FROM locations WHERE name = ? COLLATE NOCASE", name,
	).Scan(&existing)
	if err == nil {
		return types.Location{}, fmt.Errorf("location %q already exists: %w", existing, types.ErrDuplicateLocation)
	}
	if err != sql.ErrNoRows {
		return types.Location{}, fmt.Errorf("check duplicate location: %w", err)
	}

	loc := types.Location{
		LocationID: newID(),
		Name:       name,
		NumBins:    numBins,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = tx.Exec(
		"INSERT INTO locations (location_id, name, num_bins, created_at) VALUES (?, ?, ?, ?)",
		loc.LocationID, loc.Name, loc.NumBins, timestamp(loc.CreatedAt),
	)
	if err != nil {
		return types.Location{}, fmt.Errorf("persist location: %w", err)
	}

	inv := inverseOp{Op: opDeleteLocation, LocationID: loc.LocationID}
	if err := pushJournal(tx, fmt.Sprintf("add location %s", loc.Name), inv); err != nil {
		return types.Location{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Location{}, fmt.Errorf("commit location: %w", err)
	}
	return loc, nil
}

// Locations returns all locations sorted by name, ordinal ascending.
func (s *Store) Locations() ([]types.Location, error) {
	rows, err := s.db.Query(
		"SELECT location_id, name, num_bins, created_at FROM locations ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locs []types.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}

// LocationByID retrieves one location. Returns ErrLocationNotFound.
func (s *Store) LocationByID(id string) (types.Location, error) {
	row := s.db.QueryRow(
		"SELECT location_id, name, num_bins, created_at FROM locations WHERE location_id = ?", id,
	)
	loc, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return types.Location{}, fmt.Errorf("location %s: %w", id, types.ErrLocationNotFound)
	}
	return loc, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(sc scanner) (types.Location, error) {
	var (
		loc       types.Location
		createdAt string
	)
	if err := sc.Scan(&loc.LocationID, &loc.Name, &loc.NumBins, &createdAt); err != nil {
		return types.Location{}, err
	}
	loc.CreatedAt = parseTimestamp(createdAt)
	return loc, nil
}
