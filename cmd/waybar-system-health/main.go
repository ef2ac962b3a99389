// Package main is the entry point for the waybar-system-health CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Dieterbe/waybar-system-health/cmd/waybar-system-health/commands"
	"github.com/Dieterbe/waybar-system-health/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		// A nil Err only carries an exit status, e.g. from "check".
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errors.ExitUser)
}
