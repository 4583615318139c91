package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

const itemColumns = `i.item_id, i.bin_no, i.name, i.size, i.created_at, i.updated_at,
    l.location_id, l.name, l.num_bins, l.created_at`

// canonical item order: location name (ordinal), then bin, then item name.
const itemOrder = " ORDER BY l.name, i.bin_no, i.name"

// AddItem creates an item in the given bin and journals its removal as the
// inverse. The bin must already be chosen; use inventory.ChooseBin when the
// caller did not specify one.
func (s *Store) AddItem(locationID string, binNo int, name string, size types.Size) (types.Item, error) {
	if strings.TrimSpace(name) == "" {
		return types.Item{}, types.ErrInvalidName
	}
	if !size.Valid() {
		return types.Item{}, fmt.Errorf("size %q is not one of S, M, L, X: %w", size, types.ErrInvalidSize)
	}

	loc, err := s.LocationByID(locationID)
	if err != nil {
		return types.Item{}, err
	}
	if binNo < 1 || binNo > loc.NumBins {
		return types.Item{}, types.BinOutOfRangeError(loc.Name, loc.NumBins)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return types.Item{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	item := types.Item{
		ItemID:    newID(),
		Location:  loc,
		BinNo:     binNo,
		Name:      name,
		Size:      size,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = tx.Exec(
		"INSERT INTO items (item_id, location_id, bin_no, name, size, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ItemID, loc.LocationID, item.BinNo, item.Name, string(item.Size),
		timestamp(now), timestamp(now),
	)
	if err != nil {
		return types.Item{}, fmt.Errorf("persist item: %w", err)
	}

	inv := inverseOp{Op: opDeleteItem, ItemID: item.ItemID}
	if err := pushJournal(tx, fmt.Sprintf("add item %s", item.Name), inv); err != nil {
		return types.Item{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Item{}, fmt.Errorf("commit item: %w", err)
	}
	return item, nil
}

// UpdateItem applies a partial update. Each provided field is validated as
// in AddItem; on success the previous values of the changed fields are
// journaled so undo restores the exact prior record.
func (s *Store) UpdateItem(id string, patch types.ItemPatch) error {
	if patch.Empty() {
		return nil
	}

	item, err := s.ItemByID(id)
	if err != nil {
		return err
	}

	// The bin range check runs against the item's target location,
	// which the patch itself may change.
	targetLoc := item.Location
	if patch.LocationID != nil && *patch.LocationID != item.Location.LocationID {
		targetLoc, err = s.LocationByID(*patch.LocationID)
		if err != nil {
			return err
		}
	}

	targetBin := item.BinNo
	if patch.BinNo != nil {
		targetBin = *patch.BinNo
	}
	if targetBin < 1 || targetBin > targetLoc.NumBins {
		return types.BinOutOfRangeError(targetLoc.Name, targetLoc.NumBins)
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return types.ErrInvalidName
	}
	if patch.Size != nil && !patch.Size.Valid() {
		return fmt.Errorf("size %q is not one of S, M, L, X: %w", *patch.Size, types.ErrInvalidSize)
	}

	var prev itemFields
	if patch.LocationID != nil && *patch.LocationID != item.Location.LocationID {
		v := item.Location.LocationID
		prev.LocationID = &v
	}
	if patch.BinNo != nil && *patch.BinNo != item.BinNo {
		v := item.BinNo
		prev.BinNo = &v
	}
	if patch.Name != nil && *patch.Name != item.Name {
		v := item.Name
		prev.Name = &v
	}
	if patch.Size != nil && *patch.Size != item.Size {
		v := string(item.Size)
		prev.Size = &v
	}
	if prev.empty() {
		// Every provided field already holds the requested value.
		return nil
	}
	prevUpdated := timestamp(item.UpdatedAt)
	prev.UpdatedAt = &prevUpdated

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if prev.LocationID != nil {
		if _, err := tx.Exec("UPDATE items SET location_id = ? WHERE item_id = ?", *patch.LocationID, id); err != nil {
			return fmt.Errorf("update item location: %w", err)
		}
	}
	if prev.BinNo != nil {
		if _, err := tx.Exec("UPDATE items SET bin_no = ? WHERE item_id = ?", *patch.BinNo, id); err != nil {
			return fmt.Errorf("update item bin: %w", err)
		}
	}
	if prev.Name != nil {
		if _, err := tx.Exec("UPDATE items SET name = ? WHERE item_id = ?", *patch.Name, id); err != nil {
			return fmt.Errorf("update item name: %w", err)
		}
	}
	if prev.Size != nil {
		if _, err := tx.Exec("UPDATE items SET size = ? WHERE item_id = ?", string(*patch.Size), id); err != nil {
			return fmt.Errorf("update item size: %w", err)
		}
	}
	if _, err := tx.Exec("UPDATE items SET updated_at = ? WHERE item_id = ?", timestamp(time.Now()), id); err != nil {
		return fmt.Errorf("update item timestamp: %w", err)
	}

	inv := inverseOp{Op: opRestoreItemFields, ItemID: id, Fields: &prev}
	if err := pushJournal(tx, fmt.Sprintf("update item %s", item.Name), inv); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit item update: %w", err)
	}
	return nil
}

// DeleteItems removes the given items and journals their full prior rows so
// the deletion is undoable as a single step.
func (s *Store) DeleteItems(items []types.Item, description string) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows := make([]itemRow, 0, len(items))
	for _, item := range items {
		res, err := tx.Exec("DELETE FROM items WHERE item_id = ?", item.ItemID)
		if err != nil {
			return fmt.Errorf("delete item %s: %w", item.ItemID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("item %s: %w", item.ItemID, types.ErrItemNotFound)
		}
		rows = append(rows, itemRow{
			ItemID:     item.ItemID,
			LocationID: item.Location.LocationID,
			BinNo:      item.BinNo,
			Name:       item.Name,
			Size:       string(item.Size),
			CreatedAt:  timestamp(item.CreatedAt),
			UpdatedAt:  timestamp(item.UpdatedAt),
		})
	}

	inv := inverseOp{Op: opRestoreItems, Items: rows}
	if err := pushJournal(tx, description, inv); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// Items returns all items in canonical order: location name ascending, then
// bin number, then item name. A pure projection, identical across calls with
// no intervening mutation.
func (s *Store) Items() ([]types.Item, error) {
	return s.queryItems("SELECT "+itemColumns+
		" FROM items i JOIN locations l ON l.location_id = i.location_id"+itemOrder, nil)
}

// likeEscaper neutralizes LIKE metacharacters so a pattern matches them as
// literal text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ItemsMatching returns items whose name contains the pattern as a literal
// substring, case-insensitively, in canonical order.
func (s *Store) ItemsMatching(pattern string) ([]types.Item, error) {
	return s.queryItems("SELECT "+itemColumns+
		" FROM items i JOIN locations l ON l.location_id = i.location_id"+
		" WHERE i.name LIKE '%' || ? || '%' ESCAPE '\\'"+itemOrder,
		[]any{likeEscaper.Replace(pattern)})
}

// ItemsInLocation returns the items of one location in canonical order.
func (s *Store) ItemsInLocation(locationID string) ([]types.Item, error) {
	return s.queryItems("SELECT "+itemColumns+
		" FROM items i JOIN locations l ON l.location_id = i.location_id"+
		" WHERE i.location_id = ?"+itemOrder, []any{locationID})
}

// ItemByID retrieves one item with its location hydrated.
func (s *Store) ItemByID(id string) (types.Item, error) {
	row := s.db.QueryRow("SELECT "+itemColumns+
		" FROM items i JOIN locations l ON l.location_id = i.location_id"+
		" WHERE i.item_id = ?", id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return types.Item{}, fmt.Errorf("item %s: %w", id, types.ErrItemNotFound)
	}
	return item, err
}

// BinLoads computes the load of every bin 1..num_bins for a location: the
// sum of the size weights of the items each bin holds. Always derived from
// the item set, never stored.
func (s *Store) BinLoads(locationID string) (map[int]int, error) {
	loc, err := s.LocationByID(locationID)
	if err != nil {
		return nil, err
	}

	loads := make(map[int]int, loc.NumBins)
	for bin := 1; bin <= loc.NumBins; bin++ {
		loads[bin] = 0
	}

	rows, err := s.db.Query("SELECT bin_no, size FROM items WHERE location_id = ?", locationID)
	if err != nil {
		return nil, fmt.Errorf("query bin loads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bin  int
			size string
		)
		if err := rows.Scan(&bin, &size); err != nil {
			return nil, err
		}
		loads[bin] += types.Size(size).Weight()
	}
	return loads, rows.Err()
}

func (s *Store) queryItems(query string, args []any) ([]types.Item, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(sc scanner) (types.Item, error) {
	var (
		item                 types.Item
		size                 string
		createdAt, updatedAt string
		locCreatedAt         string
	)
	err := sc.Scan(
		&item.ItemID, &item.BinNo, &item.Name, &size, &createdAt, &updatedAt,
		&item.Location.LocationID, &item.Location.Name, &item.Location.NumBins, &locCreatedAt,
	)
	if err != nil {
		return types.Item{}, err
	}
	item.Size = types.Size(size)
	item.CreatedAt = parseTimestamp(createdAt)
	item.UpdatedAt = parseTimestamp(updatedAt)
	item.Location.CreatedAt = parseTimestamp(locCreatedAt)
	return item, nil
}
