package sqlite

// Schema DDL. The database file is the durable source of truth and survives
// across invocations, so every statement is idempotent.
const (
	createLocations = `CREATE TABLE IF NOT EXISTS locations (
    location_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    num_bins INTEGER NOT NULL CHECK (num_bins >= 1),
    created_at TEXT NOT NULL
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    location_id TEXT NOT NULL,
    bin_no INTEGER NOT NULL CHECK (bin_no >= 1),
    name TEXT NOT NULL,
    size TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (location_id) REFERENCES locations(location_id)
);`

	// The journal is a LIFO stack of inverse operations, one row per
	// mutation, popped by undo. inverse holds a tagged JSON payload.
	createJournal = `CREATE TABLE IF NOT EXISTS journal (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    inverse TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

const (
	idxLocationsName = `CREATE UNIQUE INDEX IF NOT EXISTS idx_locations_name
    ON locations(name COLLATE NOCASE);`
	idxItemsLocation = `CREATE INDEX IF NOT EXISTS idx_items_location
    ON items(location_id);`
	idxItemsLocationBin = `CREATE INDEX IF NOT EXISTS idx_items_location_bin
    ON items(location_id, bin_no);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createLocations,
	createItems,
	createJournal,
	idxLocationsName,
	idxItemsLocation,
	idxItemsLocationBin,
}
