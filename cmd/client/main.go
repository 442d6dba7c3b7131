package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/cbodonnell/playerdata/client/assets"
	"github.com/cbodonnell/playerdata/client/game"
	"github.com/cbodonnell/playerdata/client/input"
	"github.com/cbodonnell/playerdata/client/playerdata"
	"github.com/cbodonnell/playerdata/client/scenes"
	"github.com/cbodonnell/playerdata/pkg/config"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/cbodonnell/playerdata/pkg/state"
	"github.com/cbodonnell/playerdata/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding the save file")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "Save backend: file, sqlite, postgres, redis or memory")
	flag.StringVar(&cfg.Slot, "slot", cfg.Slot, "Save slot")
	flag.StringVar(&cfg.ResourcesDir, "resources-dir", cfg.ResourcesDir, "Load prefabs from this directory instead of the embedded ones")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.Open(ctx, cfg.RepositoryOptions())
	if err != nil {
		panic(fmt.Sprintf("Failed to open %s repository: %v", cfg.Backend, err))
	}
	defer repository.Close(context.Background())
	log.Info("Using %s save backend, slot %s", cfg.Backend, cfg.Slot)

	registry, err := loadRegistry(cfg.ResourcesDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load resources: %v", err))
	}

	var saveDataChan chan workers.SavePlayerDataRequest
	wg := &sync.WaitGroup{}
	if cfg.AutosaveInterval > 0 {
		saveDataChan = make(chan workers.SavePlayerDataRequest, 16)
		saveWorker := workers.NewSavePlayerDataWorker(workers.NewSavePlayerDataWorkerOptions{
			Repository:   repository,
			SaveDataChan: saveDataChan,
			Slot:         cfg.Slot,
			Interval:     cfg.AutosaveInterval,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			saveWorker.Start(ctx)
		}()
		log.Info("Autosaving every %s", cfg.AutosaveInterval)
	}

	keyboard := input.NewKeyboardSource()
	newScene := func(reloader playerdata.SceneReloader, handoff state.Handoff) (scenes.Scene, error) {
		opts := scenes.NewGameSceneOptions{
			Ctx:        ctx,
			Repository: repository,
			Slot:       cfg.Slot,
			Handoff:    handoff,
			Reloader:   reloader,
			Resources:  registry,
			Input:      keyboard,
		}
		if saveDataChan != nil {
			opts.SaveDataChan = saveDataChan
			// one snapshot per second, the worker decides when to write
			opts.AutosaveTicks = ebiten.DefaultTPS
		}
		return scenes.NewGameScene(opts)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:    *debug,
		NewScene: newScene,
		Handoff:  state.NewInMemoryHandoff(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(constants.ScreenWidth, constants.ScreenHeight)
	ebiten.SetWindowTitle("Player Data")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Game stopped: %v", err)
	}

	// flush the last autosave before closing the repository
	cancel()
	wg.Wait()
	log.Info("Shutdown complete")
}

func loadRegistry(dir string) (*assets.Registry, error) {
	if dir == "" {
		return assets.NewEmbeddedRegistry()
	}
	log.Info("Loading resources from %s", dir)
	return assets.NewDirRegistry(dir)
}
