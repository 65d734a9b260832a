// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON settings file")
		fortLeft   = flag.String("fort-left", "", "path to the left fort layout (JSON)")
		fortRight  = flag.String("fort-right", "", "path to the right fort layout (JSON)")
		seed       = flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
		debug      = flag.Bool("debug", false, "verbose logging")
		pprofAddr  = flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
		menu       = flag.Bool("menu", false, "start from the menu instead of a match")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Error("pprof server stopped", "error", err)
			}
		}()
	}

	settings := config.Default()
	if *configPath != "" {
		s, err := config.Load(*configPath)
		if err != nil {
			logger.Error("load settings", "path", *configPath, "error", err)
			os.Exit(1)
		}
		settings = s
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	opts := state.Options{Settings: settings, Logger: logger}
	for _, f := range []struct {
		path string
		dst  **defs.FortLayout
	}{{*fortLeft, &opts.Left}, {*fortRight, &opts.Right}} {
		if f.path == "" {
			continue
		}
		layout, err := defs.LoadFortLayout(f.path, settings.FortWidth)
		if err != nil {
			logger.Error("load fort layout", "path", f.path, "error", err)
			os.Exit(1)
		}
		*f.dst = &layout
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *menu {
		sm.SetState(state.NewMenuState(sm, opts))
	} else {
		game, err := state.NewGameState(sm, opts)
		if err != nil {
			logger.Error("start match", "error", err)
			os.Exit(1)
		}
		sm.SetState(game)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Artillery")
	ebiten.SetTPS(int(settings.FPS))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
