package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/config"
	"github.com/pankajredekar/namecraft/internal/generator"
	"github.com/pankajredekar/namecraft/internal/ids"
	"github.com/pankajredekar/namecraft/internal/persistence"
	"github.com/pankajredekar/namecraft/internal/store"
	"github.com/pankajredekar/namecraft/internal/utils"
)

// newLogger builds the diagnostics logger. --verbose forces debug level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// loadConfig reads and validates the config, exiting on failure
func loadConfig() *config.Config {
	if !utils.FileExists(configPath) {
		utils.PrintError("%s not found. Run 'namecraft init' first", configPath)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		utils.PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		utils.PrintError("Invalid config: %v", err)
		os.Exit(1)
	}
	return cfg
}

// openStore connects to the configured database and prepares the store table
func openStore(cfg *config.Config) (*store.Store, error) {
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	st := store.NewStore(db, cfg.StoreTable)
	if err := st.Initialize(); err != nil {
		return nil, err
	}
	return st, nil
}

// openService wires config, store, gateway and generator for a command
func openService() (*catalog.Service, *config.Config) {
	cfg := loadConfig()
	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	st, err := openStore(cfg)
	if err != nil {
		utils.PrintError("%v", err)
		os.Exit(1)
	}
	log.Debug("store opened", "database", cfg.DatabaseURL, "table", cfg.StoreTable)

	gateway := persistence.NewGateway(st, log)
	return catalog.NewService(gateway, ids.New, generator.NewGenerator(nil)), cfg
}

// fail prints err and exits
func fail(msg string, err error) {
	utils.PrintError("%s: %v", msg, err)
	os.Exit(1)
}
