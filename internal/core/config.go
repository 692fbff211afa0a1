package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the host's drawing area and for deterministic
// grid generation.
type RuntimeConfig struct {
	ScreenW  int   // Drawing area width in characters
	ScreenH  int   // Drawing area height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Successful moves this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the cursor or player changed position this tick
}
