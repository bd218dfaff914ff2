package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform layer fills it from the terminal and the command line.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic word selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// TooSmall reports whether the screen cannot fit the game board.
func (c RuntimeConfig) TooSmall() bool {
	return c.ScreenW < MinScreenW || c.ScreenH < MinScreenH
}

// Minimum terminal size for the play screen: header, board of six rows,
// input line and help bar.
const (
	MinScreenW = 44
	MinScreenH = 20
)
