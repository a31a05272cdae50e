package dash

import (
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

const (
	firstPlatformX = 100 // x of the platform the player drops onto
	coinLift       = 10  // gap between a coin and its platform
	coinAttempts   = 5   // placement tries before a coin is skipped
)

// fallbackObstacle is used when the asset provider has no obstacle sprites.
var fallbackObstacle = Sprite{Name: "block", Width: 40, Height: 40, Glyph: '█'}

// Layout is the initial level content produced by Generate.
type Layout struct {
	Platforms    []Platform
	Obstacles    []Obstacle
	Coins        []Coin
	CoinsSpawned int
}

// Generate builds a level layout. The RNG is consumed in a fixed order:
// first platform y, then for every further platform: gap, vertical offset,
// obstacle roll [count, then sprite index and x per obstacle], coin roll
// [x per placement attempt]. The same seed and parameters always yield
// the same layout.
func Generate(level config.LevelDescriptor, assets Assets, cfg config.DashConfig, rng core.RNG) Layout {
	sprites := assets.ObstacleSprites()
	if len(sprites) == 0 {
		sprites = []Sprite{fallbackObstacle}
	}
	coin := assets.CoinSprite()

	pw, ph := cfg.Platform.Width, cfg.Platform.Height
	budget := level.PlatformBudget(cfg.Session.LevelDuration)

	var out Layout
	out.Platforms = make([]Platform, 0, budget)

	firstY := core.RandInt(level.MinPlatformY, level.MaxPlatformY, rng)
	out.Platforms = append(out.Platforms, Platform{core.NewRect(firstPlatformX, float64(firstY), pw, ph)})

	for i := 1; i < budget; i++ {
		last := out.Platforms[len(out.Platforms)-1]

		gap := core.RandInt(level.SafeGapMin, level.SafeGapMax, rng)
		offset := core.RandInt(level.VerticalOffsetMin, level.VerticalOffsetMax, rng)
		y := core.ClampF(last.Y+float64(offset), float64(level.MinPlatformY), float64(level.MaxPlatformY))

		p := Platform{core.NewRect(last.Right()+float64(gap), y, pw, ph)}
		out.Platforms = append(out.Platforms, p)

		if rng.Float64() < level.ObstacleChance {
			n := core.RandInt(1, level.ObstacleMax, rng)
			for j := 0; j < n; j++ {
				idx := int(rng.Float64() * float64(len(sprites)))
				if idx >= len(sprites) {
					idx = len(sprites) - 1
				}
				s := sprites[idx]
				x := p.X + float64(core.RandIntF(0, slack(p.W, s.Width), rng))
				out.Obstacles = append(out.Obstacles, Obstacle{
					Rect:   core.NewRect(x, p.Y-s.Height, s.Width, s.Height),
					Sprite: idx,
				})
			}
		}

		if rng.Float64() < level.CoinChance {
			for attempt := 0; attempt < coinAttempts; attempt++ {
				x := p.X + float64(core.RandIntF(0, slack(p.W, coin.Width), rng))
				c := Coin{core.NewRect(x, p.Y-coin.Height-coinLift, coin.Width, coin.Height)}
				if overlapsPlatformObstacle(c.Rect, p, out.Obstacles) {
					continue
				}
				out.Coins = append(out.Coins, c)
				out.CoinsSpawned++
				break
			}
		}
	}

	return out
}

// slack is how far an item of width w can shift while staying on a
// platform of width pw. The fraction is kept; RandIntF floors the draw.
func slack(pw, w float64) float64 {
	return max(0, pw-w)
}

// overlapsPlatformObstacle checks r against obstacles whose left edge lies
// within the platform's horizontal span.
func overlapsPlatformObstacle(r core.Rect, p Platform, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.X < p.X || o.X > p.Right() {
			continue
		}
		if r.Intersects(o.Rect) {
			return true
		}
	}
	return false
}
