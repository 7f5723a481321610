// Package main provides the entry point for tagoverride.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/tagoverride-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(command.ExitCode(err))
	}
}
