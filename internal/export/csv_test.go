package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiprasetio/stockroom/pkg/types"
)

func sampleItems() []*types.Item {
	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return []*types.Item{
		{ID: "id-1", Name: "Beras", Stock: 10, Price: 12000, CreatedAt: created, UpdatedAt: created},
		{ID: "id-2", Name: "Gula", Stock: 5, Price: 15000, CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleItems()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"id-1", "Beras", "10", "12000", "120000", "2026-02-01T08:00:00Z", "2026-02-01T08:00:00Z"}, rows[1])
	assert.Equal(t, "75000", rows[2][4])
	assert.Equal(t, "2026-02-01T09:00:00Z", rows[2][6])
}

func TestWriteCSVEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}

func TestWriteCSVFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	require.NoError(t, WriteCSVFile(path, sampleItems()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "Beras")
}
