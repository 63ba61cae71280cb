// Shared helpers for stockroom CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/adiprasetio/stockroom/internal/sqlite"
	"github.com/adiprasetio/stockroom/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// exportPath returns the CSV export target: the operator-supplied path when
// non-empty, else config.yaml export_path, else the built-in default.
func exportPath(arg string) string {
	if arg != "" {
		return arg
	}
	if configExportPath != "" {
		return configExportPath
	}
	return "inventory.csv"
}
