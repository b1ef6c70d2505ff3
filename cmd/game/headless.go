package main

import (
	"github.com/younwookim/windup/internal/application/replay"
	"github.com/younwookim/windup/internal/application/state"
	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/collision"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// SimulationResult contains the results of a replay simulation
type SimulationResult struct {
	Positions  []entity.Vec2
	Velocities []entity.Vec2
	Alive      []float64
	Motions    []state.Motion
	FinalFrame int
	Removed    bool
}

// Final returns the position after the last simulated frame
func (r SimulationResult) Final() entity.Vec2 {
	if len(r.Positions) == 0 {
		return entity.Vec2{}
	}
	return r.Positions[len(r.Positions)-1]
}

// simulateWithReplay runs the controller against stage with replayed
// input and no rendering or audio
func simulateWithReplay(replayer *replay.Replayer, cfg *config.PhysicsConfig, stage *entity.Stage) SimulationResult {
	player := system.SpawnPlayer(cfg, float64(stage.SpawnX), float64(stage.SpawnY))
	controller := system.NewController(cfg, player, replayer, nil)
	defer func() { _ = controller.Close() }()

	world := collision.NewWorld(stage)
	dt := 1.0 / float64(cfg.Display.Framerate)

	result := SimulationResult{
		Positions:  make([]entity.Vec2, 0, replayer.TotalFrames()),
		Velocities: make([]entity.Vec2, 0, replayer.TotalFrames()),
		Alive:      make([]float64, 0, replayer.TotalFrames()),
		Motions:    make([]state.Motion, 0, replayer.TotalFrames()),
	}

	for replayer.Advance() {
		controller.Update(dt)
		world.Collide(controller)
		controller.DrainEffects()

		result.Positions = append(result.Positions, controller.Position())
		result.Velocities = append(result.Velocities, controller.Velocity())
		result.Alive = append(result.Alive, controller.Alive())
		result.Motions = append(result.Motions, controller.Motion())
		result.FinalFrame = replayer.CurrentFrame()

		if controller.Removed() {
			result.Removed = true
			break
		}
	}

	return result
}
