// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Service options
	addr     = flag.String("addr", ":8080", "Listen address")
	maxGames = flag.Int("max-games", 1000, "Maximum number of live games")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Log every request and move")
	quiet   = flag.Bool("s", false, "Silent mode (no game events in the log)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.MaxGames = *maxGames

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commands
	}
}
