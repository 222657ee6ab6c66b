package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lkeller19/bankledger/internal/config"
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initializes config and the snapshot database, then returns the
// wired application.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "ledger.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankledger"), nil
	}

	return filepath.Join(configDir, "bankledger"), nil
}
