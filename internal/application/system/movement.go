package system

import (
	"math"

	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// MovementSystem handles horizontal motion with ramped acceleration
type MovementSystem struct {
	config  *config.PhysicsConfig
	effects *Effects
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.PhysicsConfig, effects *Effects) *MovementSystem {
	return &MovementSystem{config: cfg, effects: effects}
}

// Update applies one tick of horizontal input. A direction opposite to the
// current travel only brakes; acceleration resumes once the body is at rest.
func (s *MovementSystem) Update(player *entity.Player, dir Direction, canAct bool) {
	if !canAct {
		dir = DirectionNone
	}

	maxSpeed := s.config.Movement.MaxSpeed

	switch dir {
	case DirectionRight:
		player.FacingRight = true
		s.walkAnimation(player)
		if player.IsMovingLeft() {
			s.brake(player)
			return
		}
		s.accelerate(player)
		player.Velocity.X = math.Min(player.Velocity.X+player.CurrentAcceleration, maxSpeed)

	case DirectionLeft:
		player.FacingRight = false
		s.walkAnimation(player)
		if player.IsMovingRight() {
			s.brake(player)
			return
		}
		s.accelerate(player)
		player.Velocity.X = math.Max(player.Velocity.X-player.CurrentAcceleration, -maxSpeed)

	default:
		s.brake(player)
	}
}

func (s *MovementSystem) walkAnimation(player *entity.Player) {
	if player.OnSupport && !player.Jumping {
		s.effects.PlayAnimation(ClipWalk)
	}
}

func (s *MovementSystem) accelerate(player *entity.Player) {
	mv := s.config.Movement
	player.CurrentAcceleration = clampFloat(player.CurrentAcceleration+mv.Acceleration, 0, mv.MaxAcceleration)
}

func (s *MovementSystem) decelerate(player *entity.Player) {
	mv := s.config.Movement
	player.CurrentAcceleration = clampFloat(player.CurrentAcceleration-mv.Acceleration, 0, mv.MaxAcceleration)
}

// brake slows the body toward rest, snapping to zero instead of crossing it
func (s *MovementSystem) brake(player *entity.Player) {
	if player.IsIdleHorizontal() {
		player.CurrentAcceleration = 0
		return
	}

	s.decelerate(player)
	step := player.CurrentAcceleration + s.config.Movement.Acceleration

	if player.IsMovingRight() {
		player.Velocity.X -= step
		if player.Velocity.X < 0 {
			player.Velocity.X = 0
		}
	} else {
		player.Velocity.X += step
		if player.Velocity.X > 0 {
			player.Velocity.X = 0
		}
	}
}

// Trail emits the walking dust at the trailing foot and retriggers the
// step sound on its interval. Only runs while walking on a support.
func (s *MovementSystem) Trail(player *entity.Player, step SoundInstance) {
	if !player.OnSupport || player.IsIdleHorizontal() {
		return
	}

	box := player.WorldHitbox()
	origin := entity.Vec2{X: box.X + 15, Y: box.Bottom() - 5}
	if player.IsMovingLeft() {
		origin.X = box.Right() - 15
	}

	if step.State() == SoundStopped && player.StepSoundTimer > s.config.Feedback.StepInterval {
		step.Play()
		player.StepSoundTimer = 0
	}

	trail := s.config.Feedback.Trail
	s.effects.Push(ParticleEffect{
		Origin: origin,
		Color:  DustColor,
		Count:  trail.Count,
		Spread: trail.Spread,
	})
}
