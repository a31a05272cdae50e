package dash

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// Sprite is a pre-scaled image stand-in: a size in design units and the
// glyph the terminal renderer fills that area with.
type Sprite struct {
	Name   string
	Width  float64
	Height float64
	Glyph  rune
}

// Assets provides the sprite set the generator and renderer read.
type Assets interface {
	ObstacleSprites() []Sprite
	CoinSprite() Sprite
}

// Sound identifies a game event that has an audio cue.
type Sound int

const (
	SoundCoin Sound = iota
	SoundDeath
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Sounds plays audio cues. Playback is fire-and-forget; implementations
// swallow their own failures.
type Sounds interface {
	Play(s Sound)
}

// ScoreStore records a finished run and returns the ranked leaderboard.
type ScoreStore interface {
	AddScore(name string, score int) ([]storage.ScoreEntry, error)
}

type silentSounds struct{}

func (silentSounds) Play(Sound) {}

// ConfigAssets serves sprites described in the game config.
type ConfigAssets struct {
	obstacles []Sprite
	coin      Sprite
}

// NewConfigAssets builds the sprite set from config. A missing glyph
// falls back to a solid block.
func NewConfigAssets(cfg config.SpritesConfig) *ConfigAssets {
	a := &ConfigAssets{coin: spriteFrom(cfg.Coin, '*')}
	for _, s := range cfg.Obstacles {
		a.obstacles = append(a.obstacles, spriteFrom(s, '█'))
	}
	return a
}

func spriteFrom(s config.SpriteConfig, fallback rune) Sprite {
	glyph := fallback
	if r, _ := utf8.DecodeRuneInString(s.Glyph); r != utf8.RuneError {
		glyph = r
	}
	return Sprite{Name: s.Name, Width: s.Width, Height: s.Height, Glyph: glyph}
}

// ObstacleSprites returns the obstacle variants in config order.
func (a *ConfigAssets) ObstacleSprites() []Sprite { return a.obstacles }

// CoinSprite returns the coin sprite.
func (a *ConfigAssets) CoinSprite() Sprite { return a.coin }
