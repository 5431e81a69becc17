// Package config provides configuration for the chess programs.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels understood by the game driver and server.
const (
	Silent   = 0 // nothing but the board and prompts
	Events   = 1 // game start and outcome
	Commands = 2 // every move attempt
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=every move

	// Board rendering
	Board BoardConfig

	// HTTP service
	Server ServerConfig

	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Events,
		Board:      *NewBoardConfig(),
		Server:     *NewServerConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and prompts are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commands {
		return fmt.Errorf("verbosity %d outside %d..%d: %w", c.Verbosity, Silent, Commands, errors.ErrInvalidConfig)
	}
	if c.Input == nil || c.OutputFile == nil {
		return fmt.Errorf("input and output streams are required: %w", errors.ErrInvalidConfig)
	}
	return c.Server.Validate()
}
