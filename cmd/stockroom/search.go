// Search command finds items by name or ID substring.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
	"github.com/adiprasetio/stockroom/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <substring>",
	Short: "Search items by name or ID",
	Long: `Search prints every item whose name or ID contains the substring,
ignoring case.

Example:
  stockroom search milk`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := backend.Search(args[0])
	if err != nil {
		return fmt.Errorf("search items: %w", err)
	}

	if flagJSON {
		if items == nil {
			items = []*types.Item{}
		}
		return printJSON(items)
	}
	if len(items) == 0 {
		fmt.Println(ui.Muted(fmt.Sprintf("no items match %q", args[0])))
		return nil
	}
	fmt.Println(ui.ItemTable(items))
	return nil
}
