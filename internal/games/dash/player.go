package dash

import (
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

// Player is the controllable square. It owns its physics state and the
// jump state machine: grounded, airborne with a double jump left, airborne
// with the double jump spent, plus a ground-only charging flag.
type Player struct {
	core.Rect
	VelY          float64
	OnGround      bool
	Charging      bool
	CanDoubleJump bool
	JumpCharge    float64 // 0 when not charging, otherwise in [min, max]

	coyote int // ticks a jump still counts as grounded after leaving a ledge
	buffer int // ticks a too-early jump stays queued

	phys config.PhysicsConfig
}

// NewPlayer creates a player at the configured start position.
// A fresh player counts as grounded until its first update.
func NewPlayer(phys config.PhysicsConfig, pc config.PlayerConfig) *Player {
	return &Player{
		Rect:          core.NewRect(pc.StartX, pc.StartY, pc.Size, pc.Size),
		OnGround:      true,
		CanDoubleJump: true,
		phys:          phys,
	}
}

// Update advances the player one tick. dir is -1, 0 or +1 for held
// horizontal input.
func (p *Player) Update(platforms []Platform, dir int) {
	// A jump queued while airborne fires on the tick after landing, so the
	// landing tick itself still reports zero velocity on the ground.
	if p.buffer > 0 && p.OnGround {
		p.buffer = 0
		p.Jump()
	}

	p.X += float64(dir) * p.phys.Speed
	p.X = core.ClampF(p.X, 0, core.DesignWidth-p.W)

	p.VelY += p.phys.Gravity
	p.Y += p.VelY

	p.OnGround = false
	for _, pl := range platforms {
		if p.VelY > 0 && p.Rect.Intersects(pl.Rect.Inflate(p.phys.PlatformEdgeTolerance, 0)) {
			p.Y = pl.Y - p.H
			p.VelY = 0
			p.OnGround = true
			p.CanDoubleJump = true
		}
	}

	if p.Charging {
		if p.OnGround {
			p.JumpCharge = min(p.JumpCharge+p.phys.ChargeRate, p.phys.MaxJumpStrength)
		} else {
			p.Charging = false
			p.JumpCharge = 0
		}
	}

	if p.OnGround {
		p.coyote = p.phys.CoyoteFrames
	} else {
		if p.coyote > 0 {
			p.coyote--
		}
		if p.buffer > 0 {
			p.buffer--
		}
	}
}

// Jump is the instant jump. On the ground (or within coyote time) it
// launches at the minimum strength; in the air it spends the double jump;
// with neither available the press is buffered.
func (p *Player) Jump() {
	switch {
	case p.OnGround || p.coyote > 0:
		p.VelY = -p.phys.MinJumpStrength
		p.OnGround = false
		p.CanDoubleJump = true
		p.coyote = 0
		p.buffer = 0
	case p.CanDoubleJump:
		p.VelY = -p.phys.MinJumpStrength
		p.CanDoubleJump = false
	default:
		p.buffer = p.phys.JumpBufferFrames
	}
}

// StartCharge begins charging a jump. Ignored while airborne.
func (p *Player) StartCharge() {
	if !p.OnGround {
		return
	}
	p.Charging = true
	p.JumpCharge = p.phys.MinJumpStrength
}

// ReleaseCharge launches with the accumulated charge when charging on the
// ground. Otherwise it only cancels the charge, which makes it a no-op
// when no charge is in progress.
func (p *Player) ReleaseCharge() {
	if p.Charging && p.OnGround {
		p.VelY = -p.JumpCharge
		p.OnGround = false
		p.CanDoubleJump = true
		p.coyote = 0
	}
	p.Charging = false
	p.JumpCharge = 0
}

// ChargeFraction returns the charge as a fraction of the maximum strength.
func (p *Player) ChargeFraction() float64 {
	if p.phys.MaxJumpStrength <= 0 {
		return 0
	}
	return core.ClampF(p.JumpCharge/p.phys.MaxJumpStrength, 0, 1)
}
