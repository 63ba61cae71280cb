// Package export serializes the inventory collection to delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/adiprasetio/stockroom/pkg/types"
)

// csvHeader is the first row of every export.
var csvHeader = []string{"id", "name", "stock", "price", "total_value", "created_at", "updated_at"}

// WriteCSV writes the whole collection to w as comma-delimited rows with a
// header. Every item is written unconditionally, in the order given.
func WriteCSV(w io.Writer, items []*types.Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, item := range items {
		row := []string{
			item.ID,
			item.Name,
			strconv.FormatInt(item.Stock, 10),
			strconv.FormatFloat(item.Price, 'f', -1, 64),
			strconv.FormatFloat(item.Value(), 'f', -1, 64),
			item.CreatedAt.UTC().Format(time.RFC3339),
			item.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", item.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes the collection to the file at path, replacing any
// existing file.
func WriteCSVFile(path string, items []*types.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteCSV(f, items); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
