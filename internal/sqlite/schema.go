// Package sqlite implements the SQLite-backed Store for stockroom.
// The items.json file in the data directory is the source of truth; the
// SQLite database is rebuilt from it on every Attach and serves as the
// query engine for lookup, ordering, search, and aggregation.
package sqlite

// Schema DDL. Name comparisons are case-insensitive throughout, so the
// name column carries COLLATE NOCASE and the unique index rejects
// duplicates that differ only in case.
const createItems = `CREATE TABLE items (
    item_id TEXT PRIMARY KEY,
    name TEXT NOT NULL COLLATE NOCASE,
    stock INTEGER NOT NULL,
    price REAL NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

const idxItemsName = `CREATE UNIQUE INDEX idx_items_name ON items(name);`

// schemaDDL lists all statements executed on Attach, in order.
var schemaDDL = []string{
	createItems,
	idxItemsName,
}
