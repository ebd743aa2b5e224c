package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/asset"
	"github.com/plus3/tetra/cue"
	"github.com/plus3/tetra/debugui"
	"github.com/plus3/tetra/frontend"
	"github.com/plus3/tetra/internal/log"
	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

func main() {
	cfg := tetra.DefaultConfig()
	flag.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "Board width in cells.")
	flag.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "Board height in cells.")
	flag.DurationVar(&cfg.FallSpeed, "fall", cfg.FallSpeed, "Time between automatic drops.")
	flag.DurationVar(&cfg.BlinkInterval, "blink", cfg.BlinkInterval, "Line marker blink interval.")
	cellSize := flag.Int("cell", 24, "Cell size in pixels.")
	textures := flag.String("textures", "", "Directory with <color>.png textures (procedural tiles when empty).")
	volume := flag.Float64("volume", 0.5, "Audio volume, 0 mutes.")
	dealer := flag.String("dealer", "uniform", "Dealer: uniform or bag.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the dealer.")
	debug := flag.Bool("debug", false, "Show the debug overlay.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error or none.")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(*logLevel))
	if err := cfg.Validate(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	load := asset.Procedural(*cellSize)
	if *textures != "" {
		load = asset.FS(os.DirFS(*textures), ".")
	}
	library := asset.NewLibrary(load, logger)

	player := cue.NewPlayer(*volume)
	if err := player.Init(); err != nil {
		logger.Warnf("audio disabled: %v", err)
	}
	defer player.Close()

	rng := rand.New(rand.NewPCG(*seed, *seed>>1))
	var d tetra.Dealer = tetra.NewUniformDealer(rng)
	if *dealer == "bag" {
		d = tetra.NewBagDealer(rng)
	}

	sc := scene.New()
	session, err := tetra.NewSession(cfg, tetra.Options{
		Renderer: sc,
		Audio:    player,
		Assets:   library,
		Dealer:   d,
		Logger:   logger,
	})
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}
	runner := tetra.NewRunner(session)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := frontend.Options{CellSize: *cellSize, Logger: logger}
	if *debug {
		backend := debugui.NewBackend("tetra", 1280, 800)
		opts.Overlay = debugui.New(backend, runner, sc)
	}
	game := frontend.New(ctx, runner, sc, library, opts)

	if !*debug {
		w, h := game.Size()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("tetra")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Infof("press Enter to start")
	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	stats := runner.Stats()
	c := session.Counters()
	logger.Infof("%d ticks, %d pieces, %d lines, avg tick %s", stats.Ticks, c.PiecesLocked, c.LinesCleared, stats.AvgDuration)
}
