// Edit command applies a partial update to an existing item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
	"github.com/adiprasetio/stockroom/pkg/types"
)

var (
	editName  string
	editStock int64
	editPrice float64
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit an existing item",
	Long: `Edit changes the name, stock, or price of the named item.
Only the flags given on the command line are changed.

Example:
  stockroom edit Beras --stock 25
  stockroom edit Beras --name "Beras Premium" --price 13500`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "new item name")
	editCmd.Flags().Int64Var(&editStock, "stock", 0, "new stock count")
	editCmd.Flags().Float64Var(&editPrice, "price", 0, "new unit price")
}

func runEdit(cmd *cobra.Command, args []string) error {
	var upd types.ItemUpdate
	if cmd.Flags().Changed("name") {
		upd.Name = &editName
	}
	if cmd.Flags().Changed("stock") {
		upd.Stock = &editStock
	}
	if cmd.Flags().Changed("price") {
		upd.Price = &editPrice
	}
	if upd.Empty() {
		return fmt.Errorf("nothing to change (use --name, --stock, or --price)")
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	item, err := backend.Update(args[0], upd)
	if err != nil {
		return fmt.Errorf("edit item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Println(ui.Ok(fmt.Sprintf("updated %q", item.Name)))
	fmt.Println(ui.ItemDetail(item))
	return nil
}
