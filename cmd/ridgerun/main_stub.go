//go:build !ebiten

package main

import (
	"flag"
	"time"

	"ridgerun/internal/app"
	"ridgerun/internal/config"
	"ridgerun/internal/logging"
)

// Without the ebiten tag the binary runs headless: no window, no input,
// just the simulation and renderer ticking at the configured rate. Useful
// for profiling terrain generation and the render path.
func main() {
	configDir := flag.String("config", ".", "directory containing ridgerun.json")
	seed := flag.Int64("seed", 0, "override the terrain seed (0 keeps the configured one)")
	ticks := flag.Int("ticks", 300, "number of simulation ticks to run before exiting")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fallback := logging.New("info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log := logging.New(cfg.LogLevel)
	log.Info().
		Int("grid", cfg.GridSize).
		Int("ticks", *ticks).
		Int64("seed", cfg.Seed).
		Msg("starting headless flight")

	session, err := app.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("building session")
	}

	step := app.NewFixedStep(cfg.TPS)
	for ran := 0; ran < *ticks; {
		if !step.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		if session.Tick() {
			ran++
		}
	}
	log.Info().Uint64("droppedTicks", session.Dropped()).Msg("flight over")
}
