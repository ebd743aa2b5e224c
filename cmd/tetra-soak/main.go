package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetra/internal/log"
	"github.com/plus3/tetra/tetra"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", 0, "Stop after this many games (0 plays until -duration).")
	seed := flag.Uint64("seed", 1, "Seed for the dealer.")
	width := flag.Int("width", 10, "Board width.")
	height := flag.Int("height", 20, "Board height.")
	dealer := flag.String("dealer", "uniform", "Dealer: uniform or bag.")
	step := flag.Duration("step", 16*time.Millisecond, "Simulated time per tick.")
	maxTicks := flag.Int64("max-ticks", 2_000_000, "Abandon a game after this many ticks.")
	audio := flag.Bool("audio", true, "Mix audio cues headlessly every tick.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error or none.")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(*logLevel))

	cfg := tetra.DefaultConfig()
	cfg.BoardWidth = *width
	cfg.BoardHeight = *height
	if err := cfg.Validate(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	newDealer, err := dealerFactory(*dealer, *seed)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	report := &Report{
		Duration: *duration,
		Seed:     *seed,
		Width:    *width,
		Height:   *height,
		Dealer:   *dealer,
		Step:     *step,
	}
	soak := &Soak{
		Config:    cfg,
		Step:      *step,
		MaxTicks:  *maxTicks,
		NewDealer: newDealer,
		Audio:     *audio,
		Logger:    logger,
		report:    report,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Infof("soaking for %s", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	for i := 0; *games == 0 || i < *games; i++ {
		g, err := soak.Play(ctx, i)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			logger.Errorf("game %d: %v", i, err)
			os.Exit(1)
		}
		logger.Debugf("game %d: %d pieces, %d lines in %s", i, g.Pieces, g.Lines, g.Elapsed)
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Errorf("failed to generate report: %v", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

func dealerFactory(name string, seed uint64) (func(int) tetra.Dealer, error) {
	rng := func(game int) *rand.Rand {
		return rand.New(rand.NewPCG(seed, uint64(game)))
	}
	switch name {
	case "uniform":
		return func(game int) tetra.Dealer { return tetra.NewUniformDealer(rng(game)) }, nil
	case "bag":
		return func(game int) tetra.Dealer { return tetra.NewBagDealer(rng(game)) }, nil
	}
	return nil, fmt.Errorf("unknown dealer %q", name)
}
