// Package main provides the stockroom CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/adiprasetio/stockroom/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// userErrors are mistakes the operator can correct by rerunning the command.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrDuplicateName,
	types.ErrInvalidName,
	types.ErrInvalidStock,
	types.ErrInvalidPrice,
}

// exitCode maps an Execute error to a process exit code: operator mistakes
// exit with exitUserError, storage and configuration failures with
// exitSysError.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
