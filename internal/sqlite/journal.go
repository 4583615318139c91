package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Inverse operation tags. Each journal row stores exactly one of these.
const (
	opDeleteItem        = "delete_item"
	opDeleteLocation    = "delete_location"
	opRestoreItemFields = "restore_item_fields"
	opRestoreItems      = "restore_items"
)

// itemRow is a full item record as stored, used to restore deleted items.
type itemRow struct {
	ItemID     string `json:"item_id"`
	LocationID string `json:"location_id"`
	BinNo      int    `json:"bin_no"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// itemFields holds the previous values of changed item columns.
// Pointer fields distinguish "unchanged" from a restored zero value.
// UpdatedAt rides along with every update so undo restores the exact row,
// bookkeeping column included.
type itemFields struct {
	LocationID *string `json:"location_id,omitempty"`
	BinNo      *int    `json:"bin_no,omitempty"`
	Name       *string `json:"name,omitempty"`
	Size       *string `json:"size,omitempty"`
	UpdatedAt  *string `json:"updated_at,omitempty"`
}

// empty looks only at the domain columns; UpdatedAt never changes alone.
func (f itemFields) empty() bool {
	return f.LocationID == nil && f.BinNo == nil && f.Name == nil && f.Size == nil
}

// inverseOp is the tagged payload of one journal entry.
type inverseOp struct {
	Op         string      `json:"op"`
	ItemID     string      `json:"item_id,omitempty"`
	LocationID string      `json:"location_id,omitempty"`
	Fields     *itemFields `json:"fields,omitempty"`
	Items      []itemRow   `json:"items,omitempty"`
}

// pushJournal appends one inverse entry inside the caller's transaction, so
// the mutation and its undo record either both persist or neither does.
func pushJournal(tx *sql.Tx, description string, inv inverseOp) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	_, err = tx.Exec(
		"INSERT INTO journal (description, inverse, created_at) VALUES (?, ?, ?)",
		description, string(payload), timestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// JournalLen returns the number of entries currently on the undo stack.
func (s *Store) JournalLen() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM journal").Scan(&n); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return n, nil
}

// Undo pops the most recent journal entry and applies its inverse as one
// transaction. It returns the recorded description of the operation that
// was reversed, and ok=false when the journal is empty (a reported no-op,
// never an error).
func (s *Store) Undo() (description string, ok bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		seq     int64
		payload string
	)
	row := tx.QueryRow("SELECT seq, description, inverse FROM journal ORDER BY seq DESC LIMIT 1")
	if err := row.Scan(&seq, &description, &payload); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read journal: %w", err)
	}

	var inv inverseOp
	if err := json.Unmarshal([]byte(payload), &inv); err != nil {
		return "", false, fmt.Errorf("decode journal entry %d: %w", seq, err)
	}

	if err := applyInverse(tx, inv); err != nil {
		return "", false, fmt.Errorf("apply inverse of %q: %w", description, err)
	}

	if _, err := tx.Exec("DELETE FROM journal WHERE seq = ?", seq); err != nil {
		return "", false, fmt.Errorf("pop journal entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("commit undo: %w", err)
	}
	return description, true, nil
}

// applyInverse restores the exact prior state of the records named by inv.
func applyInverse(tx *sql.Tx, inv inverseOp) error {
	switch inv.Op {
	case opDeleteItem:
		_, err := tx.Exec("DELETE FROM items WHERE item_id = ?", inv.ItemID)
		return err

	case opDeleteLocation:
		if _, err := tx.Exec("DELETE FROM items WHERE location_id = ?", inv.LocationID); err != nil {
			return err
		}
		_, err := tx.Exec("DELETE FROM locations WHERE location_id = ?", inv.LocationID)
		return err

	case opRestoreItemFields:
		if inv.Fields == nil {
			return nil
		}
		f := inv.Fields
		if f.LocationID != nil {
			if _, err := tx.Exec("UPDATE items SET location_id = ? WHERE item_id = ?", *f.LocationID, inv.ItemID); err != nil {
				return err
			}
		}
		if f.BinNo != nil {
			if _, err := tx.Exec("UPDATE items SET bin_no = ? WHERE item_id = ?", *f.BinNo, inv.ItemID); err != nil {
				return err
			}
		}
		if f.Name != nil {
			if _, err := tx.Exec("UPDATE items SET name = ? WHERE item_id = ?", *f.Name, inv.ItemID); err != nil {
				return err
			}
		}
		if f.Size != nil {
			if _, err := tx.Exec("UPDATE items SET size = ? WHERE item_id = ?", *f.Size, inv.ItemID); err != nil {
				return err
			}
		}
		if f.UpdatedAt != nil {
			if _, err := tx.Exec("UPDATE items SET updated_at = ? WHERE item_id = ?", *f.UpdatedAt, inv.ItemID); err != nil {
				return err
			}
		}
		return nil

	case opRestoreItems:
		for _, r := range inv.Items {
			_, err := tx.Exec(
				"INSERT INTO items (item_id, location_id, bin_no, name, size, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				r.ItemID, r.LocationID, r.BinNo, r.Name, r.Size, r.CreatedAt, r.UpdatedAt,
			)
			if err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown inverse operation %q", inv.Op)
	}
}
