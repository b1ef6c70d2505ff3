package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/windup/internal/application/replay"
	"github.com/younwookim/windup/internal/application/scene/playing"
	"github.com/younwookim/windup/internal/application/state"
	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// createTestConfig returns the default tuning with a full meter
func createTestConfig() *config.PhysicsConfig {
	cfg := config.Default()
	cfg.Meter.Initial = cfg.Meter.Max
	return cfg
}

// createTestStageWithGround creates a stage whose spawn point rests on the ground
func createTestStageWithGround() *entity.Stage {
	return &entity.Stage{
		Width:    640,
		Height:   320,
		TileSize: 32,
		SpawnX:   64,
		SpawnY:   240,
		Obstacles: []*entity.Obstacle{
			{ID: 1, Kind: entity.KindSolid, Box: entity.Rect{X: 0, Y: 288, W: 640, H: 32}},
		},
	}
}

func framesHolding(n int, from, to int, data *replay.ReplayData, set func(*replay.FrameInput)) {
	for i := from; i < to && i < n; i++ {
		set(&data.Frames[i])
	}
}

func TestReplayIdlePlayer_VelocityStability(t *testing.T) {
	replayer := replay.NewReplayer(replay.CreateTestReplayData(120))
	result := simulateWithReplay(replayer, createTestConfig(), createTestStageWithGround())

	require.Equal(t, 120, result.FinalFrame)
	for i, v := range result.Velocities {
		assert.Equal(t, entity.Vec2{}, v, "velocity at frame %d", i)
		assert.Equal(t, entity.Vec2{X: 64, Y: 240}, result.Positions[i], "position at frame %d", i)
		assert.Equal(t, state.MotionIdle, result.Motions[i], "motion at frame %d", i)
	}
}

func TestReplayIdlePlayer_MeterDrains(t *testing.T) {
	replayer := replay.NewReplayer(replay.CreateTestReplayData(5))
	result := simulateWithReplay(replayer, createTestConfig(), createTestStageWithGround())

	assert.Equal(t, []float64{999, 998, 997, 996, 995}, result.Alive)
}

func TestReplayDeterminism(t *testing.T) {
	data := replay.CreateTestReplayData(90, system.ActionRight)
	framesHolding(90, 40, 45, &data, func(f *replay.FrameInput) { f.J = true })

	cfg := createTestConfig()
	result1 := simulateWithReplay(replay.NewReplayer(data), cfg, createTestStageWithGround())
	result2 := simulateWithReplay(replay.NewReplayer(data), cfg, createTestStageWithGround())

	require.Equal(t, len(result1.Positions), len(result2.Positions), "Frame count should match")
	assert.Equal(t, result1.Positions, result2.Positions)
	assert.Equal(t, result1.Velocities, result2.Velocities)
	assert.Equal(t, result1.Alive, result2.Alive)
}

func TestReplayWithMovement(t *testing.T) {
	// idle, move right, jump, idle
	data := replay.CreateTestReplayData(120)
	framesHolding(120, 30, 60, &data, func(f *replay.FrameInput) { f.R = true })
	framesHolding(120, 60, 90, &data, func(f *replay.FrameInput) { f.J = true })

	result := simulateWithReplay(replay.NewReplayer(data), createTestConfig(), createTestStageWithGround())
	require.Len(t, result.Positions, 120)

	assert.Greater(t, result.Positions[59].X, result.Positions[29].X, "Player should move right during frames 30-60")

	minY := result.Positions[60].Y
	for i := 60; i < 90; i++ {
		minY = min(minY, result.Positions[i].Y)
	}
	assert.Less(t, minY, 240.0, "Player should jump")
	assert.Equal(t, 240.0, result.Final().Y, "Player should land again")
}

func TestReplayWindup(t *testing.T) {
	cfg := config.Default()
	data := replay.CreateTestReplayData(70, system.ActionWindup)

	result := simulateWithReplay(replay.NewReplayer(data), cfg, createTestStageWithGround())

	// Empty meter: only winding up gives the player time
	assert.Equal(t, 0.0, result.Alive[0])
	assert.Equal(t, cfg.Meter.Charge, result.Alive[len(result.Alive)-1])
	assert.Equal(t, state.MotionWindingUp, result.Motions[len(result.Motions)-1])
}

func TestReplayChopperStops(t *testing.T) {
	stage := createTestStageWithGround()
	stage.SpawnX, stage.SpawnY = 300, 100
	stage.Obstacles = append(stage.Obstacles, &entity.Obstacle{
		ID: 2, Kind: entity.KindChopper, Box: entity.Rect{X: 290, Y: 200, W: 64, H: 16},
	})

	result := simulateWithReplay(replay.NewReplayer(replay.CreateTestReplayData(100)), createTestConfig(), stage)

	assert.True(t, result.Removed)
	assert.Less(t, result.FinalFrame, 100)
	assert.Equal(t, state.MotionRemoved, result.Motions[len(result.Motions)-1])
}

func TestRecorderAndReplayer(t *testing.T) {
	recorder := playing.NewRecorder(12345, "demo")
	inputs := []system.InputState{
		{Right: true},
		{Right: true, Jump: true},
		{Right: true, Jump: true},
		{Windup: true},
	}
	for _, input := range inputs {
		recorder.RecordFrame(input)
	}

	replayer := replay.NewReplayer(recorder.Data())
	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Equal(t, 4, replayer.TotalFrames())

	for i, expected := range inputs {
		require.True(t, replayer.Advance(), "Should have input for frame %d", i)
		assert.Equal(t, expected, replayer.Input(), "input at frame %d", i)
	}
	assert.False(t, replayer.Advance(), "Should be at end of replay")
}

func TestEmbeddedConfigs(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Entities.Sounds)

	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", stageCfg.ID)

	_, err = fs.Stat(configFS, "configs/physics.json")
	assert.NoError(t, err)
}

func TestEmbeddedDemoReplay(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	stage := system.LoadStage(stageCfg)
	result := simulateWithReplay(replay.NewReplayer(replay.CreateTestReplayData(60, system.ActionWindup)), cfg.Physics, stage)

	assert.Equal(t, 60, result.FinalFrame)
	assert.False(t, result.Removed)
}

func TestSimulationResult_FinalEmpty(t *testing.T) {
	assert.Equal(t, entity.Vec2{}, SimulationResult{}.Final())
}
