package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiprasetio/stockroom/internal/sqlite"
	"github.com/adiprasetio/stockroom/pkg/types"
)

// runSession feeds the scripted lines to a session over the given store and
// returns everything the session printed.
func runSession(t *testing.T, store types.Store, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	s := NewSession(store, in, &out, filepath.Join(t.TempDir(), "export.csv"))
	require.NoError(t, s.Run())
	return out.String()
}

func newStore(t *testing.T) types.Store {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestSessionExit(t *testing.T) {
	out := runSession(t, newStore(t), "0")
	assert.Contains(t, out, "STOCKROOM")
	assert.Contains(t, out, "Bye.")
}

func TestSessionEndOfInput(t *testing.T) {
	store := newStore(t)
	in := strings.NewReader("") // immediate EOF
	var out bytes.Buffer
	require.NoError(t, NewSession(store, in, &out, "").Run())
}

func TestSessionAddAndList(t *testing.T) {
	store := newStore(t)
	out := runSession(t, store,
		"1", "Beras", "10", "12000",
		"2",
		"0",
	)
	assert.Contains(t, out, "added \"Beras\"")
	assert.Contains(t, out, "Beras")

	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].Stock)
}

func TestSessionAddInvalidInput(t *testing.T) {
	store := newStore(t)
	out := runSession(t, store,
		"1", "Beras", "ten", // bad stock, re-prompts at the menu
		"1", "Beras", "10", "cheap", // bad price
		"0",
	)
	assert.Contains(t, out, "not a number: ten")
	assert.Contains(t, out, "not a number: cheap")

	items, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSessionAddDuplicateMergesStock(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"1", "beras", "5", "12000", "y",
		"0",
	)
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "now 15")

	item, err := store.Get("Beras")
	require.NoError(t, err)
	assert.Equal(t, int64(15), item.Stock)
}

func TestSessionAddDuplicateDeclined(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"1", "Beras", "5", "12000", "n",
		"0",
	)
	assert.Contains(t, out, "add cancelled")

	item, err := store.Get("Beras")
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Stock)
}

func TestSessionEditKeepsEmptyFields(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"3", "Beras", "", "25", "",
		"0",
	)
	assert.Contains(t, out, "updated \"Beras\"")

	item, err := store.Get("Beras")
	require.NoError(t, err)
	assert.Equal(t, "Beras", item.Name)
	assert.Equal(t, int64(25), item.Stock)
	assert.Equal(t, 12000.0, item.Price)
}

func TestSessionEditNotFound(t *testing.T) {
	out := runSession(t, newStore(t),
		"3", "Sabun",
		"0",
	)
	assert.Contains(t, out, "no item named \"Sabun\"")
}

func TestSessionDeleteConfirmed(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"4", "Beras", "y",
		"0",
	)
	assert.Contains(t, out, "deleted \"Beras\"")

	items, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSessionDeleteCancelled(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"4", "Beras", "n",
		"0",
	)
	assert.Contains(t, out, "delete cancelled")

	_, err = store.Get("Beras")
	require.NoError(t, err)
}

func TestSessionSearch(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Whole Milk", 4, 18000)
	require.NoError(t, err)
	_, err = store.Add("Butter", 6, 30000)
	require.NoError(t, err)

	out := runSession(t, store,
		"5", "milk",
		"5", "tofu",
		"0",
	)
	assert.Contains(t, out, "Whole Milk")
	assert.Contains(t, out, "no items match \"tofu\"")
}

func TestSessionStockSet(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"6", "Beras", "1", "3",
		"6", "Sabun",
		"0",
	)
	assert.Contains(t, out, "current stock: 10")
	assert.Contains(t, out, "now 3")
	assert.Contains(t, out, "no item named \"Sabun\"")

	item, err := store.Get("Beras")
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.Stock)
}

func TestSessionStockAdd(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"6", "Beras", "2", "5",
		"0",
	)
	assert.Contains(t, out, "now 15")
}

func TestSessionStockSubtractClampsAtZero(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"6", "Beras", "3", "4",
		"6", "Beras", "3", "100",
		"0",
	)
	assert.Contains(t, out, "now 6")
	assert.Contains(t, out, "stock is now empty")
	assert.Contains(t, out, "now 0")

	item, err := store.Get("Beras")
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Stock)
}

func TestSessionStockUnknownMode(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	out := runSession(t, store,
		"6", "Beras", "4", "1", // no such mode
		"0",
	)
	assert.Contains(t, out, "unknown choice \"4\"")

	item, err := store.Get("Beras")
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Stock)
}

func TestSessionExport(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	out := runSession(t, store,
		"7", path,
		"0",
	)
	assert.Contains(t, out, "exported 1 items")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Beras")
}

func TestSessionReport(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Beras", 10, 12000)
	require.NoError(t, err)
	_, err = store.Add("Gula", 5, 15000)
	require.NoError(t, err)

	out := runSession(t, store,
		"8",
		"0",
	)
	assert.Contains(t, out, "items:         2")
	assert.Contains(t, out, "total value:   195000.00")
}

func TestSessionUnknownChoice(t *testing.T) {
	out := runSession(t, newStore(t),
		"9",
		"0",
	)
	assert.Contains(t, out, "unknown choice \"9\"")
}
