// Package config provides YAML-based game configuration loading, the level
// descriptor table and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// DashConfig contains all tunable parameters of the platformer.
// Distances are in design units on the fixed 1200×800 canvas; speeds and
// accelerations are per tick.
type DashConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Platform PlatformConfig `yaml:"platform"`
	Spikes   SpikesConfig   `yaml:"spikes"`
	Session  SessionConfig  `yaml:"session"`
	Sprites  SpritesConfig  `yaml:"sprites"`
	Effects  EffectsConfig  `yaml:"effects"`
}

// PhysicsConfig defines movement, jumping and collision tolerances.
type PhysicsConfig struct {
	Gravity               float64 `yaml:"gravity"`
	MinJumpStrength       float64 `yaml:"min_jump_strength"`
	MaxJumpStrength       float64 `yaml:"max_jump_strength"`
	ChargeRate            float64 `yaml:"charge_rate"`
	Speed                 float64 `yaml:"speed"` // world scroll and player strafe speed
	CollisionTolerance    float64 `yaml:"collision_tolerance"`
	PlatformEdgeTolerance float64 `yaml:"platform_edge_tolerance"`
	CoyoteFrames          int     `yaml:"coyote_frames"`
	JumpBufferFrames      int     `yaml:"jump_buffer_frames"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
}

// PlatformConfig defines the fixed platform size.
type PlatformConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpikesConfig defines the hazard strip along the bottom of the canvas.
type SpikesConfig struct {
	Height   float64 `yaml:"height"`
	Count    int     `yaml:"count"`
	Backdrop float64 `yaml:"backdrop"` // dark band drawn above the spikes
}

// SessionConfig defines lives and level timing.
type SessionConfig struct {
	Lives         int     `yaml:"lives"`
	LevelDuration float64 `yaml:"level_duration"` // seconds; also the platform budget
}

// SpriteConfig describes one sprite variant pre-scaled to design units.
type SpriteConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
}

// SpritesConfig lists the obstacle variants and the coin sprite.
type SpritesConfig struct {
	Obstacles []SpriteConfig `yaml:"obstacles"`
	Coin      SpriteConfig   `yaml:"coin"`
}

// EffectsConfig tunes the cosmetic background bubbles.
type EffectsConfig struct {
	BubbleSpawnChance float64 `yaml:"bubble_spawn_chance"`
	BubbleMax         int     `yaml:"bubble_max"`
	BubbleMinRadius   float64 `yaml:"bubble_min_radius"`
	BubbleMaxRadius   float64 `yaml:"bubble_max_radius"`
	BubbleMinSpeed    float64 `yaml:"bubble_min_speed"`
	BubbleMaxSpeed    float64 `yaml:"bubble_max_speed"`
}

// Validate reports configuration values the simulation cannot run with.
func (c DashConfig) Validate() error {
	var errs []error
	if c.Physics.MinJumpStrength <= 0 {
		errs = append(errs, errors.New("physics.min_jump_strength must be positive"))
	}
	if c.Physics.MaxJumpStrength < c.Physics.MinJumpStrength {
		errs = append(errs, errors.New("physics.max_jump_strength must be >= min_jump_strength"))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, errors.New("player.size must be positive"))
	}
	if c.Platform.Width <= 0 || c.Platform.Height <= 0 {
		errs = append(errs, errors.New("platform width and height must be positive"))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, errors.New("session.lives must be positive"))
	}
	if c.Session.LevelDuration <= 0 {
		errs = append(errs, errors.New("session.level_duration must be positive"))
	}
	if len(c.Sprites.Obstacles) == 0 {
		errs = append(errs, errors.New("sprites.obstacles must list at least one sprite"))
	}
	for i, s := range c.Sprites.Obstacles {
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("sprites.obstacles[%d] %q has no size", i, s.Name))
		}
	}
	if c.Sprites.Coin.Width <= 0 || c.Sprites.Coin.Height <= 0 {
		errs = append(errs, errors.New("sprites.coin has no size"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Unknown values return ""
// which leaves the loaded config untouched.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyDashPreset modifies the config based on a difficulty preset.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 15
		cfg.Physics.CoyoteFrames = 5
	case DifficultyNormal:
		cfg.Session.Lives = 10
		cfg.Physics.CoyoteFrames = 3
	case DifficultyHard:
		cfg.Session.Lives = 5
		cfg.Physics.CoyoteFrames = 1
	}
}
