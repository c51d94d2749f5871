//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"ridgerun/internal/app"
	"ridgerun/internal/config"
	"ridgerun/internal/logging"
)

func main() {
	configDir := flag.String("config", ".", "directory containing ridgerun.json")
	seed := flag.Int64("seed", 0, "override the terrain seed (0 keeps the configured one)")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logging.New("info").Fatal().Err(err).Msg("invalid configuration")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log := logging.New(cfg.LogLevel)
	log.Info().
		Int("grid", cfg.GridSize).
		Int("viewDistance", cfg.ViewDistance).
		Int64("seed", cfg.Seed).
		Msg("starting flight")

	session, err := app.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("building session")
	}

	game := app.New(session, cfg.Scale)

	ebiten.SetWindowTitle("ridgerun")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ViewportWidth*cfg.Scale, cfg.ViewportHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("main loop")
	}
	log.Info().Uint64("droppedTicks", session.Dropped()).Msg("flight over")
}
