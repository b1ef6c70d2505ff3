// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/windup/internal/application/scene"
	"github.com/younwookim/windup/internal/application/state"
	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/collision"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// advancer is an input source that steps through recorded frames
type advancer interface {
	Advance() bool
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	stage    *entity.Stage
	world    *collision.World
	state    state.GameState
	motion   state.Motion

	player     *entity.Player
	controller *system.Controller
	presenter  *presenter
	palette    *palette
	audio      Audio

	// input is polled once per frame into frameInput, which is what the
	// controller reads and what gets recorded
	input      system.InputSource
	frameInput system.InputState

	screenW int
	screenH int
	cam     entity.Vec2
	elapsed float64

	rng  *rand.Rand
	seed int64

	recorder       *Recorder
	recordFilename string

	watcher *config.Watcher
	loader  *config.Loader
}

// New creates a new Playing scene on stageCfg.
// A nil audio plays nothing. If recordPath is not empty, input is recorded.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, audio Audio, recordPath string) *Playing {
	if audio == nil {
		audio = silentAudio{}
	}

	seed := time.Now().UnixNano()
	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		audio:          audio,
		input:          system.NewKeyboardInput(),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		rng:            rand.New(rand.NewSource(seed)),
		seed:           seed,
		recordFilename: recordPath,
	}
	p.presenter = newPresenter(cfg.Entities.Player.Sprite, audio, p.rng)
	p.loadStage(stageCfg)
	p.spawn()

	if recordPath != "" {
		p.recorder = NewRecorder(seed, stageCfg.ID)
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p
}

// SetInput replaces the input source (keyboard by default). A source
// with an Advance method is stepped once per frame and ends the scene
// when it runs out.
func (p *Playing) SetInput(src system.InputSource) {
	p.input = src
}

// SetSeed reseeds the particle RNG so a replay renders the same bursts
func (p *Playing) SetSeed(seed int64) {
	p.seed = seed
	p.rng.Seed(seed)
}

// WatchConfig hot-reloads physics.json and the current stage file when
// the watcher reports a change
func (p *Playing) WatchConfig(w *config.Watcher, loader *config.Loader) {
	p.watcher = w
	p.loader = loader
}

func (p *Playing) loadStage(stageCfg *config.StageConfig) {
	p.stageCfg = stageCfg
	p.stage = system.LoadStage(stageCfg)
	p.world = collision.NewWorld(p.stage)
	p.palette = newPalette(p.config.Entities, stageCfg)
}

// spawn creates a fresh player and controller at the stage spawn point
func (p *Playing) spawn() {
	if p.controller != nil {
		if err := p.controller.Close(); err != nil {
			log.Printf("Failed to release player sounds: %v", err)
		}
	}

	p.player = system.SpawnPlayer(p.config.Physics, float64(p.stage.SpawnX), float64(p.stage.SpawnY))
	p.controller = system.NewController(p.config.Physics, p.player, &p.frameInput, p.audio)
	if key, ok := p.config.Entities.Player.Sprite.Animations["key"]; ok {
		p.controller.SetKeyAnimation(key)
	}

	p.frameInput = system.InputState{}
	p.motion = p.controller.Motion()
	p.state = state.StatePlaying
	p.elapsed = 0
	p.presenter.reset()
	p.cam = followCamera(p.controller.Hitbox().Center(), p.screenW, p.screenH, p.stage.Width, p.stage.Height)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollConfig()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		if adv, ok := p.input.(advancer); ok && !adv.Advance() {
			log.Printf("Replay finished after %.1fs", p.elapsed)
			return nil, scene.ErrQuit
		}
		p.step(system.ReadInput(p.input), dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.restart()
		}
	}

	return nil, nil
}

// step runs one simulation frame with the given input snapshot:
// controller tick, collision callbacks, then presentation.
func (p *Playing) step(in system.InputState, dt float64) {
	p.frameInput = in
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.controller.Update(dt)
	p.world.Collide(p.controller)

	p.presenter.apply(p.controller.DrainEffects())
	p.presenter.update(dt)
	p.elapsed += dt

	next := p.controller.Motion()
	if !state.CanTransition(p.motion, next) {
		log.Printf("unexpected motion transition %s -> %s", p.motion, next)
	}
	p.motion = next

	p.cam = followCamera(p.controller.Hitbox().Center(), p.screenW, p.screenH, p.stage.Width, p.stage.Height)

	if p.controller.Removed() || p.controller.Hitbox().Top() > float64(p.stage.Height) {
		p.state = state.StateGameOver
		p.saveRecording()
	}
}

func (p *Playing) pollConfig() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	for {
		name, ok := p.watcher.Poll()
		if !ok {
			return
		}
		p.reload(name)
	}
}

func (p *Playing) reload(name string) {
	switch name {
	case "physics.json":
		physics, err := p.loader.LoadPhysics()
		if err != nil {
			log.Printf("Physics reload failed, keeping current tuning: %v", err)
			return
		}
		p.config.Physics = physics
		p.controller.SetConfig(physics)
		log.Printf("Reloaded %s", name)
	case p.stageCfg.ID + ".yaml":
		stageCfg, err := p.loader.LoadStage(p.stageCfg.ID)
		if err != nil {
			log.Printf("Stage reload failed, keeping current stage: %v", err)
			return
		}
		p.loadStage(stageCfg)
		p.restart()
		log.Printf("Reloaded stage %s", stageCfg.ID)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		if !errors.Is(err, ErrNoFrames) {
			log.Printf("Failed to save recording: %v", err)
		}
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
}

func (p *Playing) restart() {
	p.seed = time.Now().UnixNano()
	p.rng.Seed(p.seed)
	p.spawn()

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.stageCfg.ID)
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.palette.background)

	p.drawObstacles(screen)
	p.controller.Draw(&screenFrame{
		screen:    screen,
		cam:       p.cam,
		pal:       p.palette,
		bodyFrame: p.presenter.frame(),
	})
	p.drawParticles(screen)
	p.drawHUD(screen)
	p.drawOverlay(screen)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording and releases the player's sounds
func (p *Playing) OnExit() {
	p.saveRecording()
	if err := p.controller.Close(); err != nil {
		log.Printf("Failed to release player sounds: %v", err)
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Controller returns the player's controller
func (p *Playing) Controller() *system.Controller {
	return p.controller
}
