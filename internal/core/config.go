package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt its rendering to the screen size and to turn
// tick counts into seconds.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Seconds converts a tick count to seconds.
func (c RuntimeConfig) Seconds(ticks int) float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(ticks) / float64(rate)
}
