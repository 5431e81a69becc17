// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Write the board and prompts to this file (default: stdout)")
	colourMode = flag.String("colour", "auto", "Colour the board: auto, always, never")
	noCoords   = flag.Bool("nocoords", false, "Don't print rank and file labels")
	recordFile = flag.String("record", "", "Write the position after every move to this file")
	jsonOutput = flag.Bool("J", false, "Write the record in JSON lines format")

	// Analysis
	perftDepth = flag.Int("perft", 0, "Count positions to this depth from the initial position and exit")
	workers    = flag.Int("workers", 0, "Number of worker threads for -perft (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every move attempt")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game events in the log)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
// isTerminal reports whether the output is an interactive terminal.
func applyFlags(cfg *config.Config, isTerminal bool) {
	applyBoardFlags(cfg, isTerminal)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commands
	}
}

// applyBoardFlags configures board rendering.
func applyBoardFlags(cfg *config.Config, isTerminal bool) {
	switch *colourMode {
	case "always":
		cfg.Board.Colour = true
	case "never":
		cfg.Board.Colour = false
	default:
		cfg.Board.Colour = isTerminal
	}
	cfg.Board.Coordinates = !*noCoords
}
