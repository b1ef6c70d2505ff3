package system

import (
	"errors"
	"math"

	"github.com/younwookim/windup/internal/application/state"
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// Frame is the render target the controller draws itself onto
type Frame interface {
	DrawBody(box entity.Rect, clip AnimationClip, facingRight bool)
	DrawKey(box entity.Rect, frame int, facingRight bool)
}

const (
	keyWidth  = 10
	keyHeight = 14
)

var defaultKeyAnimation = config.AnimationConfig{Frames: 5, FrameSpeed: 0.2, Loop: true}

// Controller runs the per-tick update of the single controllable entity.
// Collision callbacks arrive after Update within the same frame.
type Controller struct {
	config *config.PhysicsConfig
	player *entity.Player
	input  InputSource

	effects   *Effects
	meter     *MeterSystem
	movement  *MovementSystem
	gravity   *GravitySystem
	collision *CollisionSystem

	windDown SoundInstance
	steps    SoundInstance
	key      *Animation

	prev     InputState
	curr     InputState
	lastStep entity.Vec2
}

// SpawnPlayer creates a player at (x, y) using the configured hitbox and meter
func SpawnPlayer(cfg *config.PhysicsConfig, x, y float64) *entity.Player {
	hb := cfg.Collision.Hitbox
	return entity.NewPlayer(x, y, entity.HitboxRect{
		OffsetX: hb.OffsetX,
		OffsetY: hb.OffsetY,
		Width:   hb.Width,
		Height:  hb.Height,
	}, cfg.Meter.Initial, cfg.Meter.Iframes)
}

// NewController wires the sub-systems around player.
// A nil sound bank yields silent ambient loops.
func NewController(cfg *config.PhysicsConfig, player *entity.Player, input InputSource, sounds SoundBank) *Controller {
	if sounds == nil {
		sounds = NopSoundBank{}
	}

	effects := NewEffects(ClipStanding)
	meter := NewMeterSystem(cfg, effects)

	windDown := sounds.NewInstance(SoundWindDown)
	windDown.SetVolume(cfg.Feedback.WindDownVolume)

	return &Controller{
		config:    cfg,
		player:    player,
		input:     input,
		effects:   effects,
		meter:     meter,
		movement:  NewMovementSystem(cfg, effects),
		gravity:   NewGravitySystem(cfg, effects),
		collision: NewCollisionSystem(cfg, effects, meter),
		windDown:  windDown,
		steps:     sounds.NewInstance(SoundStep),
		key:       NewAnimation(defaultKeyAnimation),
	}
}

// SetKeyAnimation replaces the wind-up key clip
func (c *Controller) SetKeyAnimation(cfg config.AnimationConfig) {
	c.key = NewAnimation(cfg)
}

// SetConfig swaps the tuning used by every sub-system
func (c *Controller) SetConfig(cfg *config.PhysicsConfig) {
	c.config = cfg
	c.meter.config = cfg
	c.movement.config = cfg
	c.gravity.config = cfg
	c.collision.config = cfg
	c.windDown.SetVolume(cfg.Feedback.WindDownVolume)
}

// Update runs one tick. A removed entity is no longer simulated.
func (c *Controller) Update(dt float64) {
	p := c.player
	if p.Removed {
		return
	}

	c.updateTimers(dt)

	if p.IsIdleHorizontal() && !p.IsAirborne() && !p.Jumping {
		c.effects.PlayAnimation(ClipStanding)
	}

	c.prev = c.curr
	c.curr = ReadInput(c.input)

	if p.IsAirborne() {
		p.OnSupport = false
		p.OnConveyor = false
	}

	c.meter.Update(p, dt, c.curr.Windup)
	c.gravity.Update(p, c.jumpPressed())
	c.movement.Update(p, c.curr.Direction(), p.Alive > 0 && !p.WindingUp)
	c.movement.Trail(p, c.steps)
	c.meter.UpdateWindDown(p, c.windDown)

	c.lastStep = c.gravity.Integrate(p)
	// conveyor contact is re-established by this frame's collisions
	p.OnConveyor = false

	c.key.Reverse = p.WindingUp
	c.key.Paused = p.Alive <= 0
	c.key.Update(dt)
}

func (c *Controller) updateTimers(dt float64) {
	p := c.player
	p.InvulnerabilityTimer += dt
	p.StepSoundTimer += dt
	p.WindDownSoundTimer += dt
}

func (c *Controller) jumpPressed() bool {
	return c.curr.Jump && !c.prev.Jump
}

// OnCollision classifies an overlap with obstacle and resolves it
func (c *Controller) OnCollision(obstacle *entity.Obstacle) {
	if obstacle == nil || c.player.Removed {
		return
	}
	side := Classify(c.player.WorldHitbox(), c.lastStep, obstacle.Box)
	c.OnOverlap(obstacle, side)
}

// OnOverlap resolves an overlap whose side is already known
func (c *Controller) OnOverlap(obstacle *entity.Obstacle, side ContactSide) {
	if c.player.Removed {
		return
	}
	c.collision.Resolve(c.player, obstacle, side)
}

// Draw renders the body and the wind-up key. The body blinks while
// invulnerable.
func (c *Controller) Draw(frame Frame) {
	p := c.player
	box := p.WorldHitbox()

	if c.meter.CanTakeDamage(p) || int(math.Floor(p.InvulnerabilityTimer*10))%2 == 0 {
		frame.DrawBody(box, c.effects.Animation(), p.FacingRight)
	}

	key := entity.Rect{X: box.Right(), Y: box.Y + box.H/7, W: keyWidth, H: keyHeight}
	if p.FacingRight {
		key.X = box.X - keyWidth
	}
	frame.DrawKey(key, c.key.Frame(), p.FacingRight)
}

// Close releases the owned sound instances
func (c *Controller) Close() error {
	return errors.Join(c.windDown.Close(), c.steps.Close())
}

// DrainEffects returns the effects produced since the last call
func (c *Controller) DrainEffects() []Effect {
	return c.effects.Drain()
}

// Motion derives the motion state from the current body state
func (c *Controller) Motion() state.Motion {
	p := c.player
	switch {
	case p.Removed:
		return state.MotionRemoved
	case p.WindingUp:
		return state.MotionWindingUp
	case p.Velocity.Y < 0 && p.Jumping:
		return state.MotionJumping
	case p.IsAirborne():
		return state.MotionFalling
	case !p.IsIdleHorizontal():
		return state.MotionMoving
	default:
		return state.MotionIdle
	}
}

func (c *Controller) Position() entity.Vec2 { return c.player.Position }
func (c *Controller) Velocity() entity.Vec2 { return c.player.Velocity }
func (c *Controller) Hitbox() entity.Rect   { return c.player.WorldHitbox() }
func (c *Controller) Alive() float64        { return c.player.Alive }
func (c *Controller) Removed() bool         { return c.player.Removed }
func (c *Controller) Jumping() bool         { return c.player.Jumping }
func (c *Controller) OnSupport() bool       { return c.player.OnSupport }
func (c *Controller) WindingUp() bool       { return c.player.WindingUp }

// CanTakeDamage reports whether the invulnerability window has passed
func (c *Controller) CanTakeDamage() bool {
	return c.meter.CanTakeDamage(c.player)
}

// AliveRatio is the meter as a fraction of its maximum
func (c *Controller) AliveRatio() float64 {
	if c.config.Meter.Max <= 0 {
		return 0
	}
	return c.player.Alive / c.config.Meter.Max
}

// SetVelocity overrides the velocity, bypassing the speed cap
func (c *Controller) SetVelocity(v entity.Vec2) {
	c.player.Velocity = v
}
