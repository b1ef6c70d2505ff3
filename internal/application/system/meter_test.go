package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeterSystem_Drain(t *testing.T) {
	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 1000},
		{1, 999},
		{10, 990},
		{999, 1},
		{1000, 0},
		{1500, 0},
	}

	for _, tt := range tests {
		cfg := createTestConfig()
		sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
		player := createTestPlayer(cfg)
		player.Velocity.Y = 3

		for i := 0; i < tt.ticks; i++ {
			sys.Update(player, 1.0/60.0, false)
		}

		assert.Equal(t, tt.expected, player.Alive, "after %d ticks", tt.ticks)
	}
}

func TestMeterSystem_Windup(t *testing.T) {
	cfg := createTestConfig()

	t.Run("charges when resting on support", func(t *testing.T) {
		effects := NewEffects(ClipStanding)
		sys := NewMeterSystem(cfg, effects)
		player := createTestPlayer(cfg)
		player.OnSupport = true
		player.Alive = 100

		sys.Update(player, 0.5, true)
		assert.True(t, player.WindingUp)
		assert.Equal(t, 0.5, player.WindupTimer)
		assert.Equal(t, 100.0, player.Alive, "no drain while winding up")

		sys.Update(player, 0.5, true)
		assert.Equal(t, 300.0, player.Alive)
		assert.Equal(t, 0.0, player.WindupTimer)

		drained := effects.Drain()
		require.Len(t, drained, 1)
		assert.Equal(t, SoundEffect{Clip: SoundWindup, Volume: 0.5}, drained[0])
	})

	t.Run("needs support", func(t *testing.T) {
		sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
		player := createTestPlayer(cfg)

		sys.Update(player, 0.5, true)

		assert.False(t, player.WindingUp)
		assert.Equal(t, 0.0, player.WindupTimer)
	})

	t.Run("needs rest", func(t *testing.T) {
		sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
		player := createTestPlayer(cfg)
		player.OnSupport = true
		player.Velocity.Y = -1

		sys.Update(player, 0.5, true)

		assert.False(t, player.WindingUp)
	})

	t.Run("charges from empty", func(t *testing.T) {
		sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
		player := createTestPlayer(cfg)
		player.OnSupport = true
		player.Alive = 0

		sys.Update(player, 1, true)

		assert.Equal(t, 200.0, player.Alive)
	})
}

func TestMeterSystem_ClampsOutOfRange(t *testing.T) {
	cfg := createTestConfig()
	sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
	player := createTestPlayer(cfg)

	player.Alive = 5000
	sys.Update(player, 1.0/60.0, false)
	assert.Equal(t, cfg.Meter.Max, player.Alive)

	player.Alive = -20
	sys.Update(player, 1.0/60.0, false)
	assert.Equal(t, 0.0, player.Alive)
}

func TestMeterSystem_Damage(t *testing.T) {
	cfg := createTestConfig()
	sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
	player := createTestPlayer(cfg)
	player.InvulnerabilityTimer = 3

	require.True(t, sys.CanTakeDamage(player))

	sys.Damage(player, 150)
	assert.Equal(t, 850.0, player.Alive)
	assert.False(t, sys.CanTakeDamage(player))

	sys.Damage(player, 5000)
	assert.Equal(t, 0.0, player.Alive)
}

func TestMeterSystem_CanTakeDamage(t *testing.T) {
	cfg := createTestConfig()
	sys := NewMeterSystem(cfg, NewEffects(ClipStanding))
	player := createTestPlayer(cfg)

	player.InvulnerabilityTimer = 2
	assert.False(t, sys.CanTakeDamage(player), "window is exclusive")

	player.InvulnerabilityTimer = 2.01
	assert.True(t, sys.CanTakeDamage(player))
}

func TestMeterSystem_UpdateWindDown(t *testing.T) {
	cfg := createTestConfig()
	sys := NewMeterSystem(cfg, NewEffects(ClipStanding))

	t.Run("waits for the interval", func(t *testing.T) {
		player := createTestPlayer(cfg)
		sound := &fakeSound{}

		player.WindDownSoundTimer = 0.1
		sys.UpdateWindDown(player, sound)
		assert.Equal(t, 0, sound.plays)

		player.WindDownSoundTimer = 0.25
		sys.UpdateWindDown(player, sound)
		assert.Equal(t, 1, sound.plays)
		assert.Equal(t, 0.0, player.WindDownSoundTimer)
	})

	t.Run("does not restart while playing", func(t *testing.T) {
		player := createTestPlayer(cfg)
		sound := &fakeSound{state: SoundPlaying}

		player.WindDownSoundTimer = 0.25
		sys.UpdateWindDown(player, sound)

		assert.Equal(t, 0, sound.plays)
		assert.Equal(t, 0.0, player.WindDownSoundTimer)
	})

	t.Run("stops when empty", func(t *testing.T) {
		player := createTestPlayer(cfg)
		player.Alive = 0
		sound := &fakeSound{state: SoundPlaying}

		sys.UpdateWindDown(player, sound)

		assert.Equal(t, SoundStopped, sound.State())
	})

	t.Run("stops when winding up", func(t *testing.T) {
		player := createTestPlayer(cfg)
		player.WindingUp = true
		sound := &fakeSound{state: SoundPlaying}

		sys.UpdateWindDown(player, sound)

		assert.Equal(t, SoundStopped, sound.State())
	})
}
