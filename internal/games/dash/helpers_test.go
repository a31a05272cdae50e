package dash

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

// scriptRNG replays fixed draws and counts how many were taken.
// Past the end of the script it keeps returning 0.
type scriptRNG struct {
	draws []float64
	taken int
}

func (r *scriptRNG) Float64() float64 {
	r.taken++
	if r.taken <= len(r.draws) {
		return r.draws[r.taken-1]
	}
	return 0
}

// recordingSounds remembers every cue played.
type recordingSounds struct {
	played []Sound
}

func (r *recordingSounds) Play(s Sound) {
	r.played = append(r.played, s)
}

func (r *recordingSounds) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testAssets() *ConfigAssets {
	return NewConfigAssets(config.DefaultDashConfig().Sprites)
}

// calmLevel has a single platform and nothing on it.
func calmLevel(seed int64, duration float64) config.LevelDescriptor {
	d := config.DefaultLevelDescriptor()
	d.Name = "calm"
	d.Seed = seed
	d.Duration = duration
	d.ObstacleChance = 0
	d.CoinChance = 0
	return d
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func typed(text string) core.InputFrame {
	f := core.NewInputFrame()
	for _, r := range text {
		f.Type(r)
	}
	return f
}

func newTestGame(lives int, levels ...config.LevelDescriptor) (*Game, *recordingSounds) {
	cfg := config.DefaultDashConfig()
	cfg.Session.Lives = lives
	sounds := &recordingSounds{}
	g := New(
		WithConfig(cfg),
		WithLevels(config.LevelTable{Levels: levels}),
		WithSounds(sounds),
		WithLogger(quietLogger()),
	)
	g.Reset(core.DefaultConfig())
	return g, sounds
}
