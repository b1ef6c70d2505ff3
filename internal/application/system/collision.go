package system

import (
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// ContactSide is the side of the body that touched an obstacle
type ContactSide int

const (
	ContactNone  ContactSide = iota
	ContactLeft              // body's left edge against the obstacle's right edge
	ContactRight             // body's right edge against the obstacle's left edge
	ContactTop               // body landed on the obstacle's top
)

func (c ContactSide) String() string {
	switch c {
	case ContactLeft:
		return "left"
	case ContactRight:
		return "right"
	case ContactTop:
		return "top"
	default:
		return "none"
	}
}

// Classify decides which side of box hit obstacle, given the displacement
// the body made this tick. The previous position decides first; when it is
// ambiguous the axis of minimum penetration wins. Bottom contacts are
// never reported.
func Classify(box entity.Rect, step entity.Vec2, obstacle entity.Rect) ContactSide {
	if !box.Intersects(obstacle) {
		return ContactNone
	}

	prev := box.Translate(entity.Vec2{X: -step.X, Y: -step.Y})
	switch {
	case prev.Bottom() <= obstacle.Top() && step.Y >= 0:
		return ContactTop
	case prev.Right() <= obstacle.Left() && step.X > 0:
		return ContactRight
	case prev.Left() >= obstacle.Right() && step.X < 0:
		return ContactLeft
	}

	right := box.Right() - obstacle.Left()
	left := obstacle.Right() - box.Left()
	top := box.Bottom() - obstacle.Top()
	bottom := obstacle.Bottom() - box.Top()

	side, best := ContactRight, right
	if left < best {
		side, best = ContactLeft, left
	}
	if top < best {
		side, best = ContactTop, top
	}
	if bottom < best {
		return ContactNone
	}
	return side
}

// contactResponse is how the resolver treats an obstacle kind
type contactResponse int

const (
	responseIgnore contactResponse = iota
	responseCarry
	responseHazard
	responseSolid
	responseRemove
)

// classifyObstacle maps every obstacle kind to a response
func classifyObstacle(obstacle *entity.Obstacle) contactResponse {
	if obstacle == nil {
		return responseIgnore
	}
	switch obstacle.Kind {
	case entity.KindSolid:
		return responseSolid
	case entity.KindConveyor:
		return responseCarry
	case entity.KindSpikes:
		return responseHazard
	case entity.KindChopper:
		return responseRemove
	case entity.KindClock:
		return responseIgnore
	default:
		return responseIgnore
	}
}

// CollisionSystem corrects position and velocity for a classified contact
type CollisionSystem struct {
	config  *config.PhysicsConfig
	effects *Effects
	meter   *MeterSystem
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.PhysicsConfig, effects *Effects, meter *MeterSystem) *CollisionSystem {
	return &CollisionSystem{config: cfg, effects: effects, meter: meter}
}

// Resolve applies one contact against obstacle
func (s *CollisionSystem) Resolve(player *entity.Player, obstacle *entity.Obstacle, side ContactSide) {
	switch classifyObstacle(obstacle) {
	case responseIgnore:
		return
	case responseCarry:
		player.OnConveyor = true
		player.ConveyorSpeed = obstacle.Speed
		return
	case responseHazard:
		if !s.meter.CanTakeDamage(player) {
			return
		}
		s.meter.Damage(player, s.config.Meter.HazardDamage)
		s.effects.Push(SoundEffect{Clip: SoundHurt, Volume: 1})
	}

	box := obstacle.Box
	hitbox := player.Hitbox

	switch side {
	case ContactRight:
		if !player.Jumping {
			s.effects.PlayAnimation(ClipStanding)
		}
		player.Velocity.X = 0
		player.Position.X = box.Left() - hitbox.OffsetX - hitbox.Width

	case ContactLeft:
		if !player.Jumping {
			s.effects.PlayAnimation(ClipStanding)
		}
		player.Velocity.X = 0
		player.Position.X = box.Right() - hitbox.OffsetX

	case ContactTop:
		player.Velocity.Y = 0
		player.Position.Y = box.Top() - hitbox.OffsetY - hitbox.Height
		player.FallAcceleration = 0
		player.OnSupport = true
		if obstacle.Kind == entity.KindChopper {
			player.Removed = true
		}
		if player.Jumping {
			s.effects.Push(dustBurst(player, s.config.Feedback.Dust))
			s.effects.Push(SoundEffect{Clip: SoundLand, Volume: 1})
			player.Jumping = false
		}
	}
}
