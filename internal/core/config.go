package core

import "time"

// RuntimeConfig contains configuration passed to the host loop at startup.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	TickRate   int // Simulation ticks per second (default 60)
	MaxCatchUp int // Ticks run at most per frame (0 = DefaultMaxCatchUp)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		MaxCatchUp: DefaultMaxCatchUp,
	}
}

// Quantum returns the fixed simulation timestep for the configured tick rate.
func (c RuntimeConfig) Quantum() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
