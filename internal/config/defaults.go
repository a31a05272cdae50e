package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultDashConfig returns the built-in configuration. It is the last
// resort when even the embedded YAML cannot be decoded.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Physics: PhysicsConfig{
			Gravity:               1,
			MinJumpStrength:       15,
			MaxJumpStrength:       45,
			ChargeRate:            1,
			Speed:                 3,
			CollisionTolerance:    7,
			PlatformEdgeTolerance: 5,
			CoyoteFrames:          3,
			JumpBufferFrames:      2,
		},
		Player: PlayerConfig{
			StartX: 100,
			StartY: 320,
			Size:   30,
		},
		Platform: PlatformConfig{
			Width:  250,
			Height: 10,
		},
		Spikes: SpikesConfig{
			Height:   20,
			Count:    20,
			Backdrop: 30,
		},
		Session: SessionConfig{
			Lives:         10,
			LevelDuration: 40,
		},
		Sprites: SpritesConfig{
			Obstacles: []SpriteConfig{
				{Name: "ember", Width: 40, Height: 40, Glyph: "▲"},
				{Name: "sprout", Width: 40, Height: 44, Glyph: "♣"},
				{Name: "droplet", Width: 40, Height: 36, Glyph: "◆"},
				{Name: "spark", Width: 40, Height: 42, Glyph: "✦"},
			},
			Coin: SpriteConfig{Name: "star", Width: 30, Height: 30, Glyph: "★"},
		},
		Effects: EffectsConfig{
			BubbleSpawnChance: 0.03,
			BubbleMax:         15,
			BubbleMinRadius:   5,
			BubbleMaxRadius:   10,
			BubbleMinSpeed:    1,
			BubbleMaxSpeed:    3,
		},
	}
}

// DefaultLevels returns a single default level, used when the embedded
// level table cannot be decoded.
func DefaultLevels() LevelTable {
	level := DefaultLevelDescriptor()
	level.Name = "Shallows"
	level.Seed = 1
	return LevelTable{Levels: []LevelDescriptor{level}}
}

// GetDefaultYAML returns the embedded default YAML for a config file name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "dash.yaml":
		return defaultDashYAML
	case "levels.yaml":
		return defaultLevelsYAML
	default:
		return nil
	}
}
