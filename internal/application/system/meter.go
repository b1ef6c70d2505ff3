package system

import (
	"math"

	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// MeterSystem integrates the alive meter: wind-up charge, passive drain
// and the invulnerability window.
type MeterSystem struct {
	config  *config.PhysicsConfig
	effects *Effects
}

// NewMeterSystem creates a new meter system
func NewMeterSystem(cfg *config.PhysicsConfig, effects *Effects) *MeterSystem {
	return &MeterSystem{config: cfg, effects: effects}
}

// Update charges while the wind-up action is held on support at rest,
// then drains the meter when not winding up.
func (s *MeterSystem) Update(player *entity.Player, dt float64, chargeHeld bool) {
	meter := s.config.Meter

	if chargeHeld && s.canWindUp(player) {
		player.WindingUp = true
		player.WindupTimer += dt
		if player.WindupTimer >= meter.WindupTime {
			player.Alive = math.Min(player.Alive+meter.Charge, meter.Max)
			player.WindupTimer = 0
			s.effects.Push(SoundEffect{Clip: SoundWindup, Volume: s.config.Feedback.WindupVolume})
		}
	} else {
		player.WindingUp = false
	}

	if player.Alive > 0 && !player.WindingUp {
		player.Alive = math.Max(player.Alive-meter.Drain, 0)
	}
	player.Alive = clampFloat(player.Alive, 0, meter.Max)
}

func (s *MeterSystem) canWindUp(player *entity.Player) bool {
	return player.IsIdleHorizontal() && !player.IsAirborne() && player.OnSupport
}

// CanTakeDamage is true once the invulnerability window has passed
func (s *MeterSystem) CanTakeDamage(player *entity.Player) bool {
	return player.InvulnerabilityTimer > s.config.Meter.Iframes
}

// Damage takes amount from the meter and restarts the invulnerability window
func (s *MeterSystem) Damage(player *entity.Player, amount float64) {
	player.Alive = math.Max(player.Alive-amount, 0)
	player.InvulnerabilityTimer = 0
}

// UpdateWindDown drives the ambient wind-down loop: retriggered on an
// interval while the meter drains, stopped when empty or winding up.
func (s *MeterSystem) UpdateWindDown(player *entity.Player, sound SoundInstance) {
	if player.Alive <= 0 || player.WindingUp {
		sound.Stop()
		return
	}

	if player.WindDownSoundTimer > s.config.Feedback.WindDownInterval {
		if sound.State() == SoundStopped {
			sound.Play()
		}
		player.WindDownSoundTimer = 0
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
