// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize stockroom storage",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the data directory with an empty inventory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and config.yaml are materialized by PersistentPreRunE;
	// attaching materializes the data dir and an empty items.json.
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	if err := backend.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Println("Stockroom initialized successfully")
	return nil
}
