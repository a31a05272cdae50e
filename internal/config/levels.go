package config

import (
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LevelDescriptor holds the declarative generation parameters of one level.
// Fields omitted from YAML keep the defaults set by DefaultLevelDescriptor,
// so an explicit zero (e.g. coin_chance: 0) is distinct from "not set".
type LevelDescriptor struct {
	Name              string  `yaml:"name"`
	Seed              int64   `yaml:"seed"`
	Duration          float64 `yaml:"duration"` // seconds; 0 inherits session.level_duration
	SafeGapMin        int     `yaml:"safe_gap_min"`
	SafeGapMax        int     `yaml:"safe_gap_max"`
	VerticalOffsetMin int     `yaml:"vertical_offset_min"`
	VerticalOffsetMax int     `yaml:"vertical_offset_max"`
	MinPlatformY      int     `yaml:"min_platform_y"`
	MaxPlatformY      int     `yaml:"max_platform_y"`
	ObstacleChance    float64 `yaml:"obstacle_spawn_chance"`
	ObstacleMax       int     `yaml:"obstacle_max_per_platform"`
	CoinChance        float64 `yaml:"coin_chance"`
}

// DefaultLevelDescriptor returns the parameters used for any field a level
// leaves unspecified.
func DefaultLevelDescriptor() LevelDescriptor {
	return LevelDescriptor{
		Name:              "Unknown",
		SafeGapMin:        50,
		SafeGapMax:        140,
		VerticalOffsetMin: -10,
		VerticalOffsetMax: 10,
		MinPlatformY:      550,
		MaxPlatformY:      600,
		ObstacleChance:    0.3,
		ObstacleMax:       1,
		CoinChance:        0.3,
	}
}

// UnmarshalYAML decodes a level on top of the defaults.
func (d *LevelDescriptor) UnmarshalYAML(value *yaml.Node) error {
	type plain LevelDescriptor
	p := plain(DefaultLevelDescriptor())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*d = LevelDescriptor(p)
	return nil
}

// EffectiveDuration returns the level duration in seconds, falling back to
// the session-wide duration when the level does not set one.
func (d LevelDescriptor) EffectiveDuration(fallback float64) float64 {
	if d.Duration > 0 {
		return d.Duration
	}
	return fallback
}

// PlatformBudget returns how many platforms the generator places.
// The first platform is always placed, so the budget is at least one.
func (d LevelDescriptor) PlatformBudget(fallback float64) int {
	n := int(d.EffectiveDuration(fallback))
	if n < 1 {
		return 1
	}
	return n
}

// LevelTable is the ordered, index-addressed list of levels.
type LevelTable struct {
	Levels []LevelDescriptor `yaml:"levels"`
}

// Len returns the number of levels.
func (t LevelTable) Len() int {
	return len(t.Levels)
}

// Level returns the descriptor at index together with the index actually
// used. An out-of-range index is a configuration defect: it is logged and
// falls back to level 0. An empty table yields the default descriptor.
func (t LevelTable) Level(index int, logger *log.Logger) (LevelDescriptor, int) {
	if len(t.Levels) == 0 {
		if logger != nil {
			logger.Warn("level table is empty, using default level")
		}
		return DefaultLevelDescriptor(), 0
	}
	if index < 0 || index >= len(t.Levels) {
		if logger != nil {
			logger.Warn("level index out of range, defaulting to 0", "index", index, "levels", len(t.Levels))
		}
		index = 0
	}
	return t.Levels[index], index
}

// IsLast reports whether index is the final level.
func (t LevelTable) IsLast(index int) bool {
	return index >= len(t.Levels)-1
}
