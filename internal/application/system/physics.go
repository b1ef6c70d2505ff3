package system

import (
	"math"

	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// GravitySystem handles vertical motion: ramped gravity, terminal velocity
// and the jump impulse. It also integrates the position once per tick.
type GravitySystem struct {
	config  *config.PhysicsConfig
	effects *Effects
}

// NewGravitySystem creates a new gravity system
func NewGravitySystem(cfg *config.PhysicsConfig, effects *Effects) *GravitySystem {
	return &GravitySystem{config: cfg, effects: effects}
}

// Update ramps the fall acceleration, applies gravity and handles a fresh
// jump press.
func (s *GravitySystem) Update(player *entity.Player, jumpPressed bool) {
	s.applyGravity(player)

	if jumpPressed && s.canJump(player) {
		s.jump(player)
	}
}

func (s *GravitySystem) applyGravity(player *entity.Player) {
	fall := s.config.Fall
	player.FallAcceleration = clampFloat(player.FallAcceleration+fall.Multiplier, 0, fall.MaxAcceleration)

	player.Velocity.Y += s.config.Physics.Gravity * player.FallAcceleration
	player.Velocity.Y = math.Min(player.Velocity.Y, s.config.Physics.TerminalVelocity)
}

func (s *GravitySystem) canJump(player *entity.Player) bool {
	return player.OnSupport && !player.WindingUp && player.Alive > 0
}

func (s *GravitySystem) jump(player *entity.Player) {
	s.effects.PlayAnimation(ClipStanding)
	s.effects.Push(SoundEffect{Clip: SoundJump, Volume: 1})
	s.effects.Push(dustBurst(player, s.config.Feedback.Dust))

	player.Velocity = entity.Vec2{X: 0, Y: s.config.Jump.Velocity}
	player.FallAcceleration = 0
	player.Jumping = true
	player.OnSupport = false
}

// Integrate moves the body by its velocity plus any conveyor carry and
// returns the displacement.
func (s *GravitySystem) Integrate(player *entity.Player) entity.Vec2 {
	step := player.Velocity
	if player.OnSupport && player.OnConveyor {
		step.X -= player.ConveyorSpeed
	}
	player.Position = player.Position.Add(step)
	return step
}

// dustBurst is the landing-style burst under the body's feet
func dustBurst(player *entity.Player, burst config.ParticleBurst) ParticleEffect {
	box := player.WorldHitbox()
	return ParticleEffect{
		Origin: entity.Vec2{X: box.X + box.W/2, Y: box.Bottom() - 10},
		Color:  DustColor,
		Count:  burst.Count,
		Spread: burst.Spread,
	}
}
