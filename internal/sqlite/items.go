// Store operations over the items table. Every mutation writes through to
// items.json so the file always reflects the current collection.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adiprasetio/stockroom/pkg/types"
)

const itemColumns = "item_id, name, stock, price, created_at, updated_at"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateItem scans one row into a types.Item, parsing the timestamp columns.
func hydrateItem(row rowScanner) (*types.Item, error) {
	var item types.Item
	var createdAt, updatedAt string

	if err := row.Scan(&item.ID, &item.Name, &item.Stock, &item.Price, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if item.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &item, nil
}

// Add inserts a new item and persists the collection.
// Returns ErrDuplicateName when the name is already taken, ignoring case.
func (b *Backend) Add(name string, stock int64, price float64) (*types.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	now := time.Now().UTC().Truncate(time.Second)
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating UUID v7: %w", err)
	}

	item := &types.Item{
		ID:        id.String(),
		Name:      strings.TrimSpace(name),
		Stock:     stock,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	var exists int
	err = b.db.QueryRow("SELECT 1 FROM items WHERE name = ?", item.Name).Scan(&exists)
	if err == nil {
		return nil, types.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking item existence: %w", err)
	}

	_, err = b.db.Exec(
		"INSERT INTO items (item_id, name, stock, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.Name, item.Stock, item.Price,
		item.CreatedAt.Format(time.RFC3339), item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}

	if err := b.persistLocked(); err != nil {
		return nil, fmt.Errorf("persisting items: %w", err)
	}
	return item, nil
}

// Get returns the item whose name matches exactly, ignoring case.
func (b *Backend) Get(name string) (*types.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.getLocked(name)
}

func (b *Backend) getLocked(name string) (*types.Item, error) {
	row := b.db.QueryRow(
		"SELECT "+itemColumns+" FROM items WHERE name = ?",
		strings.TrimSpace(name),
	)
	item, err := hydrateItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting item %q: %w", name, err)
	}
	return item, nil
}

// List returns every item ordered by name.
func (b *Backend) List() ([]*types.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.listLocked()
}

func (b *Backend) listLocked() ([]*types.Item, error) {
	rows, err := b.db.Query("SELECT " + itemColumns + " FROM items ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*types.Item
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// Update applies a partial update to the named item, bumps UpdatedAt, and
// persists the collection. A rename is checked against the uniqueness rule.
func (b *Backend) Update(name string, upd types.ItemUpdate) (*types.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	item, err := b.getLocked(name)
	if err != nil {
		return nil, err
	}
	if upd.Empty() {
		return item, nil
	}

	if upd.Name != nil {
		newName := strings.TrimSpace(*upd.Name)
		if !strings.EqualFold(newName, item.Name) {
			var exists int
			err := b.db.QueryRow("SELECT 1 FROM items WHERE name = ?", newName).Scan(&exists)
			if err == nil {
				return nil, types.ErrDuplicateName
			}
			if err != sql.ErrNoRows {
				return nil, fmt.Errorf("checking item existence: %w", err)
			}
		}
		item.Name = newName
	}
	if upd.Stock != nil {
		item.Stock = *upd.Stock
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = b.db.Exec(
		"UPDATE items SET name = ?, stock = ?, price = ?, updated_at = ? WHERE item_id = ?",
		item.Name, item.Stock, item.Price, item.UpdatedAt.Format(time.RFC3339), item.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	if err := b.persistLocked(); err != nil {
		return nil, fmt.Errorf("persisting items: %w", err)
	}
	return item, nil
}

// AdjustStock sets the stock level of the named item.
func (b *Backend) AdjustStock(name string, stock int64) (*types.Item, error) {
	return b.Update(name, types.ItemUpdate{Stock: &stock})
}

// Delete removes the named item and persists the collection.
func (b *Backend) Delete(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	result, err := b.db.Exec("DELETE FROM items WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("deleting item %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	if err := b.persistLocked(); err != nil {
		return fmt.Errorf("persisting items: %w", err)
	}
	return nil
}

// Search returns every item whose name or ID contains the substring, ignoring
// case, ordered by name. Each call re-runs the query against current state.
func (b *Backend) Search(substr string) ([]*types.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	pattern := "%" + strings.ToLower(strings.TrimSpace(substr)) + "%"
	rows, err := b.db.Query(
		"SELECT "+itemColumns+" FROM items WHERE LOWER(name) LIKE ? OR LOWER(item_id) LIKE ? ORDER BY name ASC",
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	var items []*types.Item
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// Report aggregates count, stock, and value over the whole collection.
func (b *Backend) Report() (*types.Report, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	report := &types.Report{}
	err := b.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(stock), 0), COALESCE(SUM(stock * price), 0) FROM items",
	).Scan(&report.Count, &report.TotalStock, &report.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("aggregating items: %w", err)
	}

	if report.Count == 0 {
		return report, nil
	}
	report.AverageValue = report.TotalValue / float64(report.Count)

	err = b.db.QueryRow(
		"SELECT name FROM items ORDER BY stock ASC, name ASC LIMIT 1",
	).Scan(&report.LowestStock)
	if err != nil {
		return nil, fmt.Errorf("finding lowest stock: %w", err)
	}

	err = b.db.QueryRow(
		"SELECT name FROM items ORDER BY stock * price DESC, name ASC LIMIT 1",
	).Scan(&report.HighestValue)
	if err != nil {
		return nil, fmt.Errorf("finding highest value: %w", err)
	}

	return report, nil
}
