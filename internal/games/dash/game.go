// Package dash implements a scrolling square platformer: the player hops
// across seeded, procedurally generated platforms, dodging obstacles and
// the spike strip while collecting coins before the level timer runs out.
package dash

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// fxSeedSalt separates the cosmetic bubble stream from the level stream.
const fxSeedSalt int64 = 0x5eed_b0bb1e

// Game implements the platformer simulation and its state machine.
type Game struct {
	cfg    config.DashConfig
	levels config.LevelTable
	assets Assets
	sounds Sounds
	scores ScoreStore
	logger *log.Logger

	runtime core.RuntimeConfig
	session Session
	level   config.LevelDescriptor

	player       *Player
	platforms    []Platform
	obstacles    []Obstacle
	coins        []Coin
	coinsSpawned int
	bubbles      []Bubble
	fx           core.RNG

	state        State
	paused       bool
	tick         uint64 // ticks simulated since Reset
	attemptTicks int    // ticks simulated in the current attempt

	initials Initials
	board    []storage.ScoreEntry
	cont     continuation
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the tunables. Defaults to config.DefaultDashConfig.
func WithConfig(cfg config.DashConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLevels sets the level table. Defaults to config.DefaultLevels.
func WithLevels(t config.LevelTable) Option {
	return func(g *Game) { g.levels = t }
}

// WithAssets sets the sprite provider. Defaults to the config sprites.
func WithAssets(a Assets) Option {
	return func(g *Game) { g.assets = a }
}

// WithSounds sets the audio hook. Defaults to silence.
func WithSounds(s Sounds) Option {
	return func(g *Game) { g.sounds = s }
}

// WithScores sets the leaderboard. Defaults to an in-memory store.
func WithScores(s ScoreStore) Option {
	return func(g *Game) { g.scores = s }
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultDashConfig(),
		levels: config.DefaultLevels(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.assets == nil {
		g.assets = NewConfigAssets(g.cfg.Sprites)
	}
	if g.sounds == nil {
		g.sounds = silentSounds{}
	}
	if g.scores == nil {
		g.scores = storage.NewMemoryStore()
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g
}

// ID returns the identifier used for logs and screenshots.
func (g *Game) ID() string {
	return "dash"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Square Dash"
}

// Reset starts a fresh session at level 0 with full lives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.reset(runtime, 0)
}

// ResetAt starts a fresh session at the given level index.
// An out-of-range index falls back to level 0.
func (g *Game) ResetAt(runtime core.RuntimeConfig, level int) {
	g.reset(runtime, level)
}

func (g *Game) reset(runtime core.RuntimeConfig, level int) {
	g.runtime = runtime
	g.session = NewSession(g.cfg.Session.Lives)
	g.session.LevelIndex = level
	g.paused = false
	g.tick = 0
	g.board = nil
	g.startRun()
}

// startRun (re)starts the current level: regenerates the layout from the
// level seed and recreates the player. Lives and banked coins carry over.
func (g *Game) startRun() {
	level, idx := g.levels.Level(g.session.LevelIndex, g.logger)
	g.session.LevelIndex = idx
	g.session.CurrentCoins = 0
	g.level = level

	layout := Generate(level, g.assets, g.cfg, core.NewRNG(level.Seed))
	g.platforms = layout.Platforms
	g.obstacles = layout.Obstacles
	g.coins = layout.Coins
	g.coinsSpawned = layout.CoinsSpawned

	g.player = NewPlayer(g.cfg.Physics, g.cfg.Player)
	g.bubbles = g.bubbles[:0]
	g.fx = core.NewRNG(level.Seed ^ fxSeedSalt)
	g.attemptTicks = 0
	g.state = StatePlaying
	g.cont = nil

	g.logger.Info("level generated",
		"level", level.Name,
		"index", idx,
		"platforms", len(g.platforms),
		"obstacles", len(g.obstacles),
		"coins", g.coinsSpawned,
	)
}

// Step advances the simulation by one tick. While an overlay is waiting
// or the game is paused nothing moves.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.Waiting() {
		return StepResult{Status: g.Status()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.state != StatePlaying {
		return StepResult{Status: g.Status()}
	}

	g.tick++
	g.attemptTicks++

	g.applyCommands(in)
	g.updateBubbles()
	g.player.Update(g.platforms, direction(in))

	speed := g.cfg.Physics.Speed
	g.obstacles = advance(g.obstacles, speed)
	g.platforms = advance(g.platforms, speed)
	g.coins = advance(g.coins, speed)

	res := StepResult{Collected: g.collectCoins()}

	// Death ends the tick; the level timer is not consulted.
	if g.hitHazard() {
		g.die()
		res.Died = true
		res.Status = g.Status()
		return res
	}

	if g.runtime.Seconds(g.attemptTicks) > g.level.EffectiveDuration(g.cfg.Session.LevelDuration) {
		g.completeLevel()
		res.Completed = true
	}

	res.Status = g.Status()
	return res
}

// applyCommands forwards one-shot jump commands to the player.
func (g *Game) applyCommands(in core.InputFrame) {
	if in.Has(core.ActionChargeStart) {
		g.player.StartCharge()
	}
	if in.Has(core.ActionChargeRelease) {
		g.player.ReleaseCharge()
	}
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
}

// direction folds held left/right input into -1, 0 or +1.
func direction(in core.InputFrame) int {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	return dir
}

// collectCoins removes coins touching the player and returns how many.
func (g *Game) collectCoins() int {
	n := 0
	kept := g.coins[:0]
	for _, c := range g.coins {
		if g.player.Rect.Intersects(c.Rect) {
			n++
			g.sounds.Play(SoundCoin)
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept
	g.session.CurrentCoins += n
	return n
}

// hitHazard checks the spike strip first, then obstacle hitboxes.
func (g *Game) hitHazard() bool {
	if g.player.Bottom() > core.DesignHeight-g.cfg.Spikes.Height {
		return true
	}
	tol := g.cfg.Physics.CollisionTolerance
	for _, o := range g.obstacles {
		if g.player.Rect.Intersects(o.Hitbox(tol)) {
			return true
		}
	}
	return false
}

// updateBubbles spawns and raises the background bubbles.
func (g *Game) updateBubbles() {
	fx := g.cfg.Effects
	if len(g.bubbles) < fx.BubbleMax && g.fx.Float64() < fx.BubbleSpawnChance {
		x := g.fx.Float64() * core.DesignWidth
		radius := float64(core.RandIntF(fx.BubbleMinRadius, fx.BubbleMaxRadius, g.fx))
		speed := fx.BubbleMinSpeed + g.fx.Float64()*(fx.BubbleMaxSpeed-fx.BubbleMinSpeed)
		g.bubbles = append(g.bubbles, Bubble{X: x, Y: core.DesignHeight - 5, Radius: radius, Speed: speed})
	}

	kept := g.bubbles[:0]
	for _, b := range g.bubbles {
		b.Update()
		if !b.OffScreen() {
			kept = append(kept, b)
		}
	}
	g.bubbles = kept
}

// die handles spike or obstacle contact.
func (g *Game) die() {
	g.sounds.Play(SoundDeath)
	if g.session.LoseLife() {
		g.enterInitials()
		return
	}
	g.state = StateGameOver
	g.wait(anyKey(g.startRun))
}

// completeLevel banks the attempt's coins and waits to move on. After the
// last level the run goes straight to initials entry.
func (g *Game) completeLevel() {
	g.session.BankLevel()
	g.state = StateLevelComplete

	last := g.levels.IsLast(g.session.LevelIndex)
	g.wait(anyKey(func() {
		if last {
			g.session.Finish()
			g.enterInitials()
			return
		}
		g.session.LevelIndex++
		g.startRun()
	}))
}

// enterInitials switches to the initials prompt.
func (g *Game) enterInitials() {
	g.state = StateOutOfLives
	g.initials.Clear()
	g.wait(g.readInitials)
}

// readInitials edits the initials and submits them on confirm.
func (g *Game) readInitials(in core.InputFrame) bool {
	for _, r := range in.Text {
		g.initials.Type(r)
	}
	if in.Has(core.ActionBackspace) {
		g.initials.Backspace()
	}
	if !in.Has(core.ActionConfirm) {
		return false
	}

	name := g.initials.Name()
	entries, err := g.scores.AddScore(name, g.session.FinalCoins)
	if err != nil {
		g.logger.Warn("could not record score", "name", name, "score", g.session.FinalCoins, "err", err)
	} else {
		g.board = entries
	}
	g.state = StateScoreboard
	g.wait(anyKey(func() {
		g.session.Reset()
		g.startRun()
	}))
	return true
}

// anyKey wraps next in a continuation that fires on any input.
func anyKey(next func()) continuation {
	return func(in core.InputFrame) bool {
		if in.Empty() {
			return false
		}
		next()
		return true
	}
}

// wait suspends ticking until k accepts an input.
func (g *Game) wait(k continuation) {
	g.cont = k
}

// Waiting reports whether an overlay holds the game.
func (g *Game) Waiting() bool {
	return g.cont != nil
}

// Resume feeds input to the waiting overlay. It returns true when the
// overlay finished; the game may then be playing again or waiting on the
// next overlay.
func (g *Game) Resume(in core.InputFrame) bool {
	k := g.cont
	if k == nil {
		return false
	}
	g.cont = nil
	if !k(in) {
		g.cont = k
		return false
	}
	return true
}

// Status returns a summary of the game.
func (g *Game) Status() Status {
	return Status{
		State:   g.state,
		Level:   g.session.LevelIndex,
		Lives:   g.session.Lives,
		Coins:   g.session.Total(),
		Paused:  g.paused,
		Waiting: g.Waiting(),
	}
}

// State returns the high-level state.
func (g *Game) State() State { return g.state }

// Session returns a copy of the session state.
func (g *Game) Session() Session { return g.session }

// Player returns the player for inspection.
func (g *Game) Player() *Player { return g.player }

// Level returns the current level descriptor and its index.
func (g *Game) Level() (config.LevelDescriptor, int) {
	return g.level, g.session.LevelIndex
}

// LevelCount returns the number of levels in the table.
func (g *Game) LevelCount() int {
	return max(g.levels.Len(), 1)
}

// Scoreboard returns the entries shown after the last submission.
func (g *Game) Scoreboard() []storage.ScoreEntry { return g.board }

// Initials returns the letters typed so far on the initials prompt.
func (g *Game) Initials() string { return g.initials.Typed() }

// RemainingSeconds returns the time left in the current attempt.
func (g *Game) RemainingSeconds() float64 {
	left := g.level.EffectiveDuration(g.cfg.Session.LevelDuration) - g.runtime.Seconds(g.attemptTicks)
	return max(left, 0)
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }
