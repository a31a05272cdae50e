package dash

// Session is the state that outlives a single level attempt: level index,
// lives and banked coins. The Game is its only writer.
type Session struct {
	LevelIndex    int
	Lives         int
	BaselineCoins int // banked from completed levels
	CurrentCoins  int // collected in the current attempt
	FinalCoins    int // score submitted to the leaderboard

	startLives int
}

// NewSession creates a session at level 0 with the given lives.
func NewSession(lives int) Session {
	s := Session{startLives: lives}
	s.Reset()
	return s
}

// Reset returns lives, banked coins and level index to their initial values.
func (s *Session) Reset() {
	s.LevelIndex = 0
	s.Lives = s.startLives
	s.BaselineCoins = 0
	s.CurrentCoins = 0
	s.FinalCoins = 0
}

// Total returns banked plus in-progress coins.
func (s Session) Total() int {
	return s.BaselineCoins + s.CurrentCoins
}

// BankLevel moves the current attempt's coins into the baseline.
func (s *Session) BankLevel() {
	s.BaselineCoins += s.CurrentCoins
	s.CurrentCoins = 0
}

// LoseLife takes one life. When none remain it fixes FinalCoins at the
// current total and returns true; otherwise the attempt's coins are
// forfeited.
func (s *Session) LoseLife() (out bool) {
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.FinalCoins = s.Total()
		return true
	}
	s.CurrentCoins = 0
	return false
}

// Finish fixes FinalCoins for a completed campaign.
func (s *Session) Finish() {
	s.FinalCoins = s.Total()
}
