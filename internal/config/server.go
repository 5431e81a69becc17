package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP game service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// MaxGames bounds the number of live sessions
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:     ":8080",
		MaxGames: 1000,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 1 {
		return fmt.Errorf("max games (%d) must be positive: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
