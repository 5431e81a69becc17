package config

// BoardConfig holds settings related to board rendering.
type BoardConfig struct {
	// Colour renders pieces and the last move in ANSI colour
	Colour bool

	// Coordinates prints the rank and file labels around the grid
	Coordinates bool
}

// NewBoardConfig creates a BoardConfig with default values.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		Coordinates: true,
	}
}
