package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the filesystem layout and admin policy for one library.
// The library path is the root under which book notes, blobs, and state
// files live; everything else is derived from it unless overridden.
type Config struct {
	LibraryPath    string
	DBPath         string        `env:"PUSTAKA_DB"`
	StoragePath    string        `env:"PUSTAKA_STORAGE"`
	SessionTimeout time.Duration `env:"PUSTAKA_SESSION_TIMEOUT"`
}

func New(libraryPath string) (Config, error) {
	if libraryPath == "" {
		return Config{}, fmt.Errorf("library path is required")
	}
	cfg := Config{
		LibraryPath:    libraryPath,
		DBPath:         filepath.Join(libraryPath, ".pustaka", "pustaka.db"),
		StoragePath:    filepath.Join(libraryPath, "storage"),
		SessionTimeout: 30 * time.Minute,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SessionTimeout <= 0 {
		return Config{}, fmt.Errorf("session timeout must be positive")
	}
	return cfg, nil
}
