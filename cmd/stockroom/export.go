// Export command writes the whole inventory to a CSV file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/export"
	"github.com/adiprasetio/stockroom/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the inventory to CSV",
	Long: `Export writes every item to a comma-delimited file with a header row,
replacing any existing file at the target path. Without an argument the
export_path from config.yaml is used, falling back to inventory.csv.

Example:
  stockroom export
  stockroom export /tmp/inventory.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	path := exportPath(arg)

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := backend.List()
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	if err := export.WriteCSVFile(path, items); err != nil {
		return fmt.Errorf("export items: %w", err)
	}

	fmt.Println(ui.Ok(fmt.Sprintf("exported %d items to %s", len(items), path)))
	return nil
}
