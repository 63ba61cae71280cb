// Stock command sets the stock level of an item.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
)

var stockCmd = &cobra.Command{
	Use:   "stock <name> <count>",
	Short: "Set the stock level of an item",
	Long: `Stock sets the stock count of the named item.

Example:
  stockroom stock Beras 25`,
	Args: cobra.ExactArgs(2),
	RunE: runStock,
}

func runStock(cmd *cobra.Command, args []string) error {
	count, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid stock %q (expected an integer)", args[1])
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	item, err := backend.AdjustStock(args[0], count)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Println(ui.Ok(fmt.Sprintf("stock of %q is now %d", item.Name, item.Stock)))
	return nil
}
