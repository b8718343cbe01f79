package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/command"
	"github.com/lawnchairsociety/delver/internal/config"
	"github.com/lawnchairsociety/delver/internal/database"
	"github.com/lawnchairsociety/delver/internal/game"
	"github.com/lawnchairsociety/delver/internal/help"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/save"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/tower"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", config.DefaultPath, "Path to game config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	seed := flag.Int64("seed", 0, "World generation seed (overrides the config file; 0 keeps it)")
	slot := flag.String("load", "", "Save slot to resume at startup")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Close()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load game config, using defaults", "path", *configFile, "error", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// Use provided seed or generate from time
	worldSeed := cfg.Seed
	if worldSeed == 0 {
		worldSeed = time.Now().UnixNano()
		logger.Info("World seed selected", "seed", worldSeed, "random", true)
	} else {
		logger.Info("World seed selected", "seed", worldSeed, "random", false)
	}

	session, closeStore, err := newSession(cfg, worldSeed)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	defer closeStore()

	if *slot != "" {
		fmt.Println(command.ParseCommand("load " + *slot).Execute(session))
		fmt.Println()
	}

	logger.Always("Session started", "seed", worldSeed)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := command.Run(ctx, session, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logger.Error("Input error", "error", err)
	}
	logger.Always("Session ended", "rooms", session.Game.Tower.RoomCount(), "floor", session.Game.Pos.Floor)
}

// newSession loads content and wires the game together. The returned
// function releases the save store.
func newSession(cfg *config.GameConfig, seed int64) (*command.Session, func(), error) {
	roster, err := npc.LoadRoster(cfg.Content.Mobs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mobs: %w", err)
	}
	registry, err := spells.LoadRegistry(cfg.Content.Spells)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load spells: %w", err)
	}
	logger.Info("Spells loaded", "count", len(registry.Names()))

	descriptions := tower.DefaultDescriptions()
	if cfg.Content.Rooms != "" {
		if descriptions, err = tower.LoadDescriptions(cfg.Content.Rooms); err != nil {
			return nil, nil, fmt.Errorf("failed to load room descriptions: %w", err)
		}
	}

	helpText, err := help.Load(cfg.Content.Help)
	if err != nil {
		logger.Warning("Failed to load help, using built-in text", "path", cfg.Content.Help, "error", err)
		helpText = help.Default()
	}

	roller := stats.NewSeededRoller(seed)
	gen := tower.NewGenerator(roller, roster, registry, descriptions)
	resolver := combat.NewResolver(roller, registry, cfg.Combat)
	opts := cfg.PlayerOptions()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	return &command.Session{
		Game:     game.NewState(tower.NewTower(gen), resolver, registry, opts),
		Store:    store,
		Resolver: resolver,
		Registry: registry,
		Options:  opts,
		Help:     helpText,
	}, closeStore, nil
}

func openStore(cfg *config.GameConfig) (save.Store, func(), error) {
	if cfg.Save.Driver == config.DriverFile {
		store, err := save.NewFileStore(cfg.Save.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open save directory: %w", err)
		}
		logger.Info("Save store ready", "driver", cfg.Save.Driver, "dir", cfg.Save.Dir)
		return store, func() {}, nil
	}

	db, err := database.OpenWithConfig(cfg.DatabaseConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Info("Save store ready", "driver", cfg.Save.Driver)
	return save.NewDBStore(db), func() { db.Close() }, nil
}
