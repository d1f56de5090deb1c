package config

import (
	"fmt"
	"os"

	"organizer/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from ORG_ENV
func GetEnvironment() Environment {
	switch Environment(os.Getenv("ORG_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}

// CreateRepository creates the key-value repository for env.
// Development uses a database in the working directory, testing an
// in-memory one, and production the configured data directory.
func CreateRepository(config *Config, env Environment) (sqlite.Repository, error) {
	switch env {
	case Development:
		return openRepository("organizer-dev.db")
	case Testing:
		return CreateTestRepository()
	default:
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return openRepository(config.GetDatabasePath())
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	return openRepository(sqlite.MemoryPath)
}

func openRepository(dbPath string) (sqlite.Repository, error) {
	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
