package main

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/tetra/asset"
	"github.com/plus3/tetra/cue"
	"github.com/plus3/tetra/internal/log"
	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

// Game is the outcome of one autoplayed session.
type Game struct {
	Pieces  int
	Lines   int
	Ticks   int64
	Capped  bool
	Cells   int
	Elapsed time.Duration
}

// Soak plays games back to back with a bot.
type Soak struct {
	Config    tetra.Config
	Step      time.Duration
	MaxTicks  int64
	NewDealer func(game int) tetra.Dealer
	Audio     bool
	Logger    *log.Logger

	library *asset.Library
	scene   *scene.Scene
	report  *Report
}

func (s *Soak) Play(ctx context.Context, game int) (Game, error) {
	if s.Logger == nil {
		s.Logger = log.Discard()
	}
	if s.library == nil {
		s.library = asset.NewLibrary(asset.Procedural(8), s.Logger)
	}

	// Games share one scene; Reset keeps its storage allocated.
	if s.scene == nil {
		s.scene = scene.New()
	} else {
		s.scene.Reset()
	}
	sc := s.scene
	player := cue.NewPlayer(1)
	defer player.Close()

	session, err := tetra.NewSession(s.Config, tetra.Options{
		Renderer: sc,
		Audio:    player,
		Assets:   s.library,
		Dealer:   s.NewDealer(game),
		Logger:   s.Logger.With(fmt.Sprintf("game%d", game)),
	})
	if err != nil {
		return Game{}, err
	}

	bot := NewBot()
	runner := tetra.NewRunner(session)
	runner.Before = bot.Act

	var samples [][2]float64
	if s.Audio {
		samples = make([][2]float64, int(44100*s.Step.Seconds()))
	}

	start := time.Now()
	session.Start(ctx)
	var result Game
	for session.State() != tetra.StateEnd {
		if err := ctx.Err(); err != nil {
			return Game{}, err
		}
		if err := session.LoadErr(); err != nil {
			return Game{}, err
		}
		if s.MaxTicks > 0 && runner.Stats().Ticks >= s.MaxTicks {
			result.Capped = true
			break
		}
		if session.Loading() {
			// The asset barrier resolves on another goroutine.
			time.Sleep(time.Millisecond)
		}
		runner.Once(s.Step)
		if len(samples) > 0 {
			player.Stream(samples)
		}
	}

	stats := runner.Stats()
	c := session.Counters()
	result.Pieces = c.PiecesLocked
	result.Lines = c.LinesCleared
	result.Ticks = stats.Ticks
	result.Cells = sc.Len()
	result.Elapsed = time.Since(start)

	if s.report != nil {
		s.report.Add(result, stats)
	}
	return result, nil
}
