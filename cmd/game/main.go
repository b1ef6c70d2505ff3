package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/windup/internal/application/game"
	"github.com/younwookim/windup/internal/application/replay"
	"github.com/younwookim/windup/internal/application/scene/playing"
	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/infrastructure/audio"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headlessFlag := flag.Bool("headless", false, "With -replay, simulate without a window and print a summary")
	configFlag := flag.String("config", "", "Load configs from this directory and reload them on change")
	stageFlag := flag.String("stage", "demo", "Stage to load")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var recorded *replay.ReplayData
	if *replayFlag != "" {
		recorded, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if recorded.Stage != "" {
			*stageFlag = recorded.Stage
		}
	}

	stageCfg, err := loader.LoadStage(*stageFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *headlessFlag {
		if recorded == nil {
			log.Fatal("-headless needs -replay")
		}
		result := simulateWithReplay(replay.NewReplayer(*recorded), cfg.Physics, system.LoadStage(stageCfg))
		final := result.Final()
		log.Printf("Replayed %d frames: position (%.1f, %.1f), removed=%v",
			result.FinalFrame, final.X, final.Y, result.Removed)
		return
	}

	var sounds playing.Audio
	if !*muteFlag {
		bank := audio.NewBank(cfg.Entities.Sounds)
		if err := bank.Start(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			sounds = bank
		}
	}

	scene := playing.New(cfg, stageCfg, sounds, *recordFlag)
	if recorded != nil {
		scene.SetInput(replay.NewReplayer(*recorded))
		scene.SetSeed(recorded.Seed)
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(recorded.Frames))
	}

	if *configFlag != "" {
		watcher, err := config.NewWatcher(*configFlag, filepath.Join(*configFlag, "stages"))
		if err != nil {
			log.Printf("Config reload disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			scene.WatchConfig(watcher, loader)
			log.Printf("Watching %s for changes", *configFlag)
		}
	}

	g := game.New(scene, cfg.Physics.Display)
	defer g.Close()

	display := cfg.Physics.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Windup")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
