// Add command inserts a new item into the inventory.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <stock> <price>",
	Short: "Add a new item",
	Long: `Add inserts a new item with the given name, stock count, and unit price.
Names are unique within the inventory, compared case-insensitively.

Example:
  stockroom add "Beras" 10 12000
  stockroom add "Minyak Goreng" 8 32000.50`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	stock, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid stock %q (expected an integer)", args[1])
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q (expected a number)", args[2])
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	item, err := backend.Add(name, stock, price)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Println(ui.Ok(fmt.Sprintf("added %q with id %s", item.Name, item.ID)))
	return nil
}
