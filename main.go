// Package main is the entry point for the poncoocr CLI.
// It builds the option registry once, then hands it to the commands.
package main

import (
	"fmt"
	"os"

	"poncoocr/cmd/poncoocr/commands"
	options "poncoocr/config"
	"poncoocr/infrastructure/config"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	dataDir, err := options.ResolveDataDir()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to resolve data directory: %v\n", err)
		return 1
	}

	reg, err := options.NewDefaultRegistry(dataDir)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to register options: %v\n", err)
		return 1
	}

	// Create dependency container.
	container := config.NewContainer(reg, dataDir, os.Stderr)

	rootCmd, err := commands.NewRootCommand(container)
	if err != nil {
		container.Logger.WithError(err).Error("Failed to initialize")
		return 1
	}

	// Execute.
	if err := rootCmd.Execute(); err != nil {
		container.Logger.WithError(err).Error("Command failed")
		return 1
	}

	return 0
}
