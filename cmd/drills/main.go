// Package main provides the drills console binary. It wires together
// configuration, logging, the dice roller, and the interactive menu loop.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/drills/internal/config"
	"github.com/cory-johannsen/drills/internal/frontend/console"
	"github.com/cory-johannsen/drills/internal/game/dice"
	"github.com/cory-johannsen/drills/internal/game/menu"
	"github.com/cory-johannsen/drills/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting drills console",
		zap.Int("dice_sides", cfg.Dice.Sides),
		zap.String("dice_mode", cfg.Dice.Mode),
	)

	die, err := buildDie(cfg.Dice)
	if err != nil {
		logger.Fatal("building die", zap.Error(err))
	}

	term := console.New(os.Stdin, os.Stdout, cfg.Console)
	roller := dice.NewRoller(die, console.NewResultWriter(term), logger)
	loop := menu.NewLoop(menu.DefaultRegistry(), term, roller, logger)

	if err := loop.Run(context.Background()); err != nil {
		logger.Fatal("menu loop error", zap.Error(err))
	}
}

// buildDie constructs the configured die variant. A fair die with seed 0
// draws entropy from crypto/rand; a non-zero seed selects a deterministic,
// replayable source.
func buildDie(cfg config.DiceConfig) (dice.Die, error) {
	switch cfg.Mode {
	case "fixed":
		return dice.NewFixedDie(cfg.Sides)
	default:
		var src dice.Source
		if cfg.Seed != 0 {
			src = dice.NewSeededSource(cfg.Seed)
		} else {
			src = dice.NewCryptoSource()
		}
		return dice.NewFairDie(cfg.Sides, src)
	}
}
