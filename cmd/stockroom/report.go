// Report command prints aggregate inventory statistics.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an inventory summary report",
	Long: `Report prints the item count, total stock, total inventory value,
average value per item, and the items with the lowest stock and the
highest value.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	report, err := backend.Report()
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if flagJSON {
		return printJSON(report)
	}
	fmt.Println(ui.ReportPanel(report))
	return nil
}
