package main

import (
	"errors"
	"io/fs"

	"github.com/novusx/novusx-server/internal/config"
	"github.com/novusx/novusx-server/internal/logging"
	"github.com/novusx/novusx-server/internal/storage"
)

const defaultConfigPath = "./novusx_config.json"

// loadConfigOrDefaults reads the config file when one exists. A missing file
// is fine and yields defaults; a present but broken file aborts startup.
func loadConfigOrDefaults(path string) *config.LoadedConfig {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.Defaults()
		}
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
