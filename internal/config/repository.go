package config

import (
	"fmt"
	"os"

	"todo/internal/repository/sqlite"
)

// CreateRepository creates the key-value repository for the configured environment.
// Testing uses an in-memory database; every other environment opens the
// database file, creating its directory when needed.
func CreateRepository(config *Config) (*sqlite.Repository, error) {
	if config.Application.Environment == Testing {
		return CreateTestRepository()
	}

	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (*sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
