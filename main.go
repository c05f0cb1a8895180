package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
	"ebiten-dungeon/logger"
)

func main() {
	configPath := flag.String("config", "game.yaml", "game configuration file")
	levelPath := flag.String("level", "", "level file, overrides the configuration")
	debug := flag.Bool("debug", false, "enable the player debug snapshot and debug logging")
	flag.Parse()

	logger.Init()

	cfg, err := config.LoadGameConfig(*configPath, true)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load configuration")
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}
	if *debug {
		cfg.Debug = true
	}
	if cfg.Debug {
		logger.SetDebug()
	}

	game, err := NewGame(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start game")
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Ebiten Dungeon")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
