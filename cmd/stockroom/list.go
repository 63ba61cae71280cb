// List command prints every item in the inventory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
	"github.com/adiprasetio/stockroom/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items",
	Long:  "List prints every item in the inventory, ordered by name.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := backend.List()
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	if flagJSON {
		if items == nil {
			items = []*types.Item{}
		}
		return printJSON(items)
	}
	fmt.Println(ui.ItemTable(items))
	return nil
}
