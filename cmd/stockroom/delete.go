// Delete command removes an item from the inventory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an item",
	Long: `Delete removes the named item from the inventory.

Example:
  stockroom delete Beras`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.Delete(args[0]); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	fmt.Println(ui.Ok(fmt.Sprintf("deleted %q", args[0])))
	return nil
}
