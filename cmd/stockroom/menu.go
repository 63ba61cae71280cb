// Menu command starts the interactive numbered-menu session.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adiprasetio/stockroom/internal/cli"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long: `Menu starts an interactive session on the terminal: a numbered menu
of inventory actions, one line of input at a time. Choose 0 to exit.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	session := cli.NewSession(backend, os.Stdin, os.Stdout, exportPath(""))
	return session.Run()
}
