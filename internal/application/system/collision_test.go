package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/windup/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	obstacle := entity.Rect{X: 100, Y: 100, W: 64, H: 64}

	tests := []struct {
		name     string
		box      entity.Rect
		step     entity.Vec2
		expected ContactSide
	}{
		{"no overlap", entity.Rect{X: 0, Y: 0, W: 32, H: 48}, entity.Vec2{X: 1, Y: 1}, ContactNone},
		{"edge touch", entity.Rect{X: 68, Y: 100, W: 32, H: 48}, entity.Vec2{X: 1}, ContactNone},
		{"landing", entity.Rect{X: 110, Y: 55, W: 32, H: 48}, entity.Vec2{X: 0, Y: 3}, ContactTop},
		{"landing while walking", entity.Rect{X: 110, Y: 55, W: 32, H: 48}, entity.Vec2{X: 4, Y: 3}, ContactTop},
		{"walking into left face", entity.Rect{X: 70, Y: 110, W: 32, H: 48}, entity.Vec2{X: 4, Y: 0}, ContactRight},
		{"walking into right face", entity.Rect{X: 162, Y: 110, W: 32, H: 48}, entity.Vec2{X: -4, Y: 0}, ContactLeft},
		{"shallow right penetration", entity.Rect{X: 70, Y: 120, W: 32, H: 48}, entity.Vec2{}, ContactRight},
		{"shallow left penetration", entity.Rect{X: 161, Y: 120, W: 32, H: 48}, entity.Vec2{}, ContactLeft},
		{"shallow top penetration", entity.Rect{X: 110, Y: 54, W: 32, H: 48}, entity.Vec2{}, ContactTop},
		{"from below", entity.Rect{X: 116, Y: 160, W: 32, H: 48}, entity.Vec2{X: 0, Y: -10}, ContactNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.box, tt.step, obstacle))
		})
	}
}

func TestClassifyObstacle(t *testing.T) {
	tests := []struct {
		kind     entity.ObstacleKind
		expected contactResponse
	}{
		{entity.KindSolid, responseSolid},
		{entity.KindConveyor, responseCarry},
		{entity.KindSpikes, responseHazard},
		{entity.KindChopper, responseRemove},
		{entity.KindClock, responseIgnore},
		{entity.KindUnknown, responseIgnore},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyObstacle(&entity.Obstacle{Kind: tt.kind}))
		})
	}

	assert.Equal(t, responseIgnore, classifyObstacle(nil))
}

func createTestCollisionSystem() (*CollisionSystem, *Effects) {
	cfg := createTestConfig()
	effects := NewEffects(ClipWalk)
	return NewCollisionSystem(cfg, effects, NewMeterSystem(cfg, effects)), effects
}

func TestCollisionSystem_Resolve(t *testing.T) {
	cfg := createTestConfig()
	block := entity.Rect{X: 100, Y: 100, W: 64, H: 64}

	t.Run("right contact snaps right edge to obstacle left", func(t *testing.T) {
		sys, effects := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Position = entity.Vec2{X: 72, Y: 110}
		player.Velocity = entity.Vec2{X: 4, Y: 2}

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactRight)

		assert.Equal(t, 0.0, player.Velocity.X)
		assert.Equal(t, 2.0, player.Velocity.Y)
		assert.Equal(t, block.Left(), player.WorldHitbox().Right())
		assert.Equal(t, ClipStanding, effects.Animation())
	})

	t.Run("left contact snaps left edge to obstacle right", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Position = entity.Vec2{X: 160, Y: 110}
		player.Velocity = entity.Vec2{X: -4}

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactLeft)

		assert.Equal(t, 0.0, player.Velocity.X)
		assert.Equal(t, block.Right(), player.WorldHitbox().Left())
	})

	t.Run("side contact keeps animation while jumping", func(t *testing.T) {
		sys, effects := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Jumping = true

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactRight)

		assert.Equal(t, ClipWalk, effects.Animation())
	})

	t.Run("top contact lands", func(t *testing.T) {
		sys, effects := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Position = entity.Vec2{X: 110, Y: 60}
		player.Velocity = entity.Vec2{X: 1, Y: 10}
		player.FallAcceleration = 0.3
		player.Jumping = true

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactTop)

		assert.Equal(t, 0.0, player.Velocity.Y)
		assert.Equal(t, 1.0, player.Velocity.X)
		assert.Equal(t, block.Top(), player.WorldHitbox().Bottom())
		assert.Equal(t, 0.0, player.FallAcceleration)
		assert.True(t, player.OnSupport)
		assert.False(t, player.Jumping)
		assert.False(t, player.Removed)

		drained := effects.Drain()
		assert.Contains(t, soundClips(drained), SoundLand)
		assert.Len(t, particleBursts(drained), 1)
	})

	t.Run("top contact respects hitbox offset", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Hitbox = entity.HitboxRect{OffsetX: 4, OffsetY: 6, Width: 24, Height: 40}

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactTop)

		assert.Equal(t, 54.0, player.Position.Y)
		assert.Equal(t, block.Top(), player.WorldHitbox().Bottom())
	})

	t.Run("repeated top contact is stable", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Position = entity.Vec2{X: 110, Y: 57}
		obstacle := &entity.Obstacle{Kind: entity.KindSolid, Box: block}

		sys.Resolve(player, obstacle, ContactTop)
		rest := player.Position
		for i := 0; i < 5; i++ {
			sys.Resolve(player, obstacle, ContactTop)
			assert.Equal(t, rest, player.Position)
		}
	})

	t.Run("landing without a jump is silent", func(t *testing.T) {
		sys, effects := createTestCollisionSystem()
		player := createTestPlayer(cfg)

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactTop)

		assert.Equal(t, 0, effects.Len())
	})

	t.Run("chopper top contact removes", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindChopper, Box: block}, ContactTop)

		assert.True(t, player.Removed)
	})

	t.Run("chopper side contact is solid", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Velocity.X = 3

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindChopper, Box: block}, ContactRight)

		assert.False(t, player.Removed)
		assert.Equal(t, 0.0, player.Velocity.X)
	})

	t.Run("conveyor flags carry without resolving", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Velocity.Y = 3
		pos := player.Position

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindConveyor, Box: block, Speed: 2}, ContactTop)

		assert.True(t, player.OnConveyor)
		assert.Equal(t, 2.0, player.ConveyorSpeed)
		assert.Equal(t, pos, player.Position)
		assert.Equal(t, 3.0, player.Velocity.Y)
		assert.False(t, player.OnSupport)
	})

	t.Run("pass-through obstacles", func(t *testing.T) {
		for _, o := range []*entity.Obstacle{nil, {Kind: entity.KindClock, Box: block}, {Kind: entity.KindUnknown, Box: block}} {
			sys, effects := createTestCollisionSystem()
			player := createTestPlayer(cfg)
			player.Velocity = entity.Vec2{X: 2, Y: 3}
			before := *player

			sys.Resolve(player, o, ContactTop)

			assert.Equal(t, before, *player)
			assert.Equal(t, 0, effects.Len())
		}
	})

	t.Run("spikes ignored while invulnerable", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.InvulnerabilityTimer = 1
		player.Velocity.Y = 3

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSpikes, Box: block}, ContactTop)

		assert.Equal(t, 1000.0, player.Alive)
		assert.Equal(t, 3.0, player.Velocity.Y)
		assert.False(t, player.OnSupport)
	})

	t.Run("spikes damage then resolve", func(t *testing.T) {
		sys, effects := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.InvulnerabilityTimer = 5
		player.Velocity.Y = 3

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSpikes, Box: block}, ContactTop)

		assert.Equal(t, 1000.0-cfg.Meter.HazardDamage, player.Alive)
		assert.Equal(t, 0.0, player.InvulnerabilityTimer)
		assert.Equal(t, 0.0, player.Velocity.Y)
		assert.True(t, player.OnSupport)
		assert.Contains(t, soundClips(effects.Drain()), SoundHurt)
	})

	t.Run("no bottom handling", func(t *testing.T) {
		sys, _ := createTestCollisionSystem()
		player := createTestPlayer(cfg)
		player.Velocity = entity.Vec2{X: 1, Y: -5}
		before := *player

		sys.Resolve(player, &entity.Obstacle{Kind: entity.KindSolid, Box: block}, ContactNone)

		assert.Equal(t, before, *player)
	})
}

func TestContactSide_String(t *testing.T) {
	assert.Equal(t, "none", ContactNone.String())
	assert.Equal(t, "left", ContactLeft.String())
	assert.Equal(t, "right", ContactRight.String())
	assert.Equal(t, "top", ContactTop.String())
}
