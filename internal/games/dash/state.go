package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// State is the high-level game state.
type State int

const (
	StatePlaying       State = iota
	StateLevelComplete       // waiting for any key to continue
	StateGameOver            // lost a life, waiting for any key to retry
	StateOutOfLives          // collecting initials
	StateScoreboard          // showing ranked results
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateOutOfLives:
		return "out_of_lives"
	case StateScoreboard:
		return "scoreboard"
	default:
		return "unknown"
	}
}

// Status summarizes the game for the platform layer.
type Status struct {
	State   State
	Level   int // 0-based index of the current level
	Lives   int
	Coins   int // banked plus current attempt
	Paused  bool
	Waiting bool // an overlay holds the continuation; ticking is suspended
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Status    Status
	Collected int  // coins picked up this tick
	Died      bool // spikes or obstacle
	Completed bool // level timer ran out
}

// continuation resumes the game from an overlay. It returns true when the
// input qualified and the overlay is done.
type continuation func(in core.InputFrame) bool

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	AttemptTicks  int
	Level         int
	State         State
	Lives         int
	BaselineCoins int
	CurrentCoins  int
	FinalCoins    int
	PlayerX       float64
	PlayerY       float64
	VelY          float64
	OnGround      bool
	CanDoubleJump bool
	Charging      bool
	JumpCharge    float64
	Platforms     int
	Obstacles     int
	Coins         int
	CoinsSpawned  int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          g.tick,
		AttemptTicks:  g.attemptTicks,
		Level:         g.session.LevelIndex,
		State:         g.state,
		Lives:         g.session.Lives,
		BaselineCoins: g.session.BaselineCoins,
		CurrentCoins:  g.session.CurrentCoins,
		FinalCoins:    g.session.FinalCoins,
		Platforms:     len(g.platforms),
		Obstacles:     len(g.obstacles),
		Coins:         len(g.coins),
		CoinsSpawned:  g.coinsSpawned,
	}
	if p := g.player; p != nil {
		s.PlayerX, s.PlayerY = p.X, p.Y
		s.VelY = p.VelY
		s.OnGround = p.OnGround
		s.CanDoubleJump = p.CanDoubleJump
		s.Charging = p.Charging
		s.JumpCharge = p.JumpCharge
	}
	return s
}
