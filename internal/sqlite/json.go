// JSON persistence for the items collection. The whole collection is read on
// Attach and rewritten in full, atomically, after every mutation.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adiprasetio/stockroom/pkg/types"
)

// itemJSON mirrors one record in items.json. Timestamps are RFC 3339 strings
// so the file stays readable and diffable.
type itemJSON struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Stock     int64   `json:"stock"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// toItem converts a file record to the domain type. Returns an error when the
// record violates the collection invariants or carries unparseable timestamps.
func (r itemJSON) toItem() (*types.Item, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	item := &types.Item{
		ID:        r.ID,
		Name:      r.Name,
		Stock:     r.Stock,
		Price:     r.Price,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if item.ID == "" {
		return nil, fmt.Errorf("record %q has no id", r.Name)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// fromItem converts a domain item to its file record.
func fromItem(item *types.Item) itemJSON {
	return itemJSON{
		ID:        item.ID,
		Name:      item.Name,
		Stock:     item.Stock,
		Price:     item.Price,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// readItemsFile loads the collection from path. A missing file yields an empty
// collection. An unreadable or syntactically broken file also yields an empty
// collection so startup can proceed; the condition is logged. Records that
// fail validation are skipped individually.
func readItemsFile(path string) []*types.Item {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("items file unreadable, starting empty", "path", path, "error", err)
		}
		return nil
	}

	var records []itemJSON
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("items file malformed, starting empty", "path", path, "error", err)
		return nil
	}

	items := make([]*types.Item, 0, len(records))
	for _, rec := range records {
		item, err := rec.toItem()
		if err != nil {
			slog.Warn("skipping invalid item record", "name", rec.Name, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// writeItemsFile atomically writes the collection to path using the temp-file,
// fsync, rename pattern. The previous file contents are fully replaced.
func writeItemsFile(path string, items []*types.Item) error {
	records := make([]itemJSON, 0, len(items))
	for _, item := range items {
		records = append(records, fromItem(item))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling items: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".items-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
