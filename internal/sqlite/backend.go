package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/adiprasetio/stockroom/pkg/types"
)

// File names inside the data directory.
const (
	itemsFileName = "items.json"
	dbFileName    = "stockroom.db"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and items.json as the source of truth.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates the
// DataDir if it does not exist, rebuilds the SQLite database from items.json,
// and creates an empty items.json on first run.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is scratch state, rebuilt from items.json on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("executing schema: %w", err)
		}
	}

	items := readItemsFile(filepath.Join(dataDir, itemsFileName))
	if err := loadItems(db, items); err != nil {
		db.Close()
		return fmt.Errorf("loading items: %w", err)
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.attached = true

	// First run: materialize an empty items.json so the data dir is
	// self-describing before the first mutation.
	if _, err := os.Stat(b.itemsPath()); os.IsNotExist(err) {
		if err := b.persistLocked(); err != nil {
			b.detachLocked()
			return fmt.Errorf("initializing items file: %w", err)
		}
	}

	return nil
}

// Detach releases backend resources. Idempotent: multiple calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.detachLocked()
}

func (b *Backend) detachLocked() error {
	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		if err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}
	return nil
}

// itemsPath returns the path of the items.json source-of-truth file.
func (b *Backend) itemsPath() string {
	return filepath.Join(b.config.DataDir, itemsFileName)
}

// loadItems inserts the loaded collection into the fresh database in one
// transaction. Records that collide on the case-insensitive name are skipped;
// the first occurrence wins.
func loadItems(db *sql.DB, items []*types.Item) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO items (item_id, name, stock, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		_, err := stmt.Exec(
			item.ID,
			item.Name,
			item.Stock,
			item.Price,
			item.CreatedAt.UTC().Format(time.RFC3339),
			item.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			// Constraint violations (duplicate names) drop the later record.
			continue
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// persistLocked writes the full collection to items.json. Callers must hold b.mu.
func (b *Backend) persistLocked() error {
	items, err := b.listLocked()
	if err != nil {
		return err
	}
	return writeItemsFile(b.itemsPath(), items)
}
