package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read from the working directory
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
}

// NewLoader creates a new configuration loader reading DefaultEnvFile
func NewLoader() *Loader {
	return NewLoaderWithEnvFiles(DefaultEnvFile)
}

// NewLoaderWithEnvFiles creates a loader reading the given dotenv files.
// Missing files are skipped.
func NewLoaderWithEnvFiles(files ...string) *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: files,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Fill unset environment variables from dotenv files
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// godotenv.Load never overrides variables already present in the environment.
func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &ConfigError{Field: "env_file", Message: err.Error()}
		}
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DataDir      *string
	DBFilename   *string
	WriteTimeout *time.Duration

	WeekStart      *string
	ProjectionDays *int
	Timezone       *string

	DateFormat *string
	Color      *bool

	LogLevel  *string
	LogFormat *string
	LogFile   *string

	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.DBFilename != nil {
		config.Storage.Filename = *overrides.DBFilename
	}
	if overrides.WriteTimeout != nil {
		config.Storage.WriteTimeout = *overrides.WriteTimeout
	}

	if overrides.WeekStart != nil {
		config.Calendar.WeekStart = *overrides.WeekStart
	}
	if overrides.ProjectionDays != nil {
		config.Calendar.ProjectionDays = *overrides.ProjectionDays
	}
	if overrides.Timezone != nil {
		config.Calendar.Timezone = *overrides.Timezone
	}

	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.Color != nil {
		config.Display.Color = *overrides.Color
	}

	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}
	if overrides.LogFile != nil {
		config.Logging.File = *overrides.LogFile
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
