// Package main provides the entry point for the doc-flattener CLI.
package main

import (
	"os"

	"github.com/GabrielNunesIT/doc-flattener/internal/cli"
	"github.com/GabrielNunesIT/go-libs/logger"
)

func main() {
	// Flattened output may go to stdout, so logs go to stderr.
	log := logger.NewConsoleLogger(os.Stderr)

	app := cli.New(log)
	if err := app.Execute(); err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}
