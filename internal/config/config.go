package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the organizer
type Config struct {
	Storage     StorageConfig
	Calendar    CalendarConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Dir            string        `env:"ORG_DATA_DIR"`
	Filename       string        `env:"ORG_DB_FILENAME"`
	Key            string        `env:"ORG_STORAGE_KEY"`
	WriteTimeout   time.Duration `env:"ORG_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"ORG_DIR_PERMISSIONS"`
}

// CalendarConfig holds calendar configuration
type CalendarConfig struct {
	WeekStart      string `env:"ORG_WEEK_START"`
	ProjectionDays int    `env:"ORG_PROJECTION_DAYS"`
	Timezone       string `env:"ORG_TIMEZONE"`
}

// ValidationConfig holds input limits
type ValidationConfig struct {
	TextMaxLength int `env:"ORG_TEXT_MAX_LENGTH"`
	NameMaxLength int `env:"ORG_NAME_MAX_LENGTH"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"ORG_DATE_FORMAT"`
	Color      bool   `env:"ORG_COLOR"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `env:"ORG_LOG_LEVEL"`
	Format string `env:"ORG_LOG_FORMAT"`
	File   string `env:"ORG_LOG_FILE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"ORG_APP_TIMEOUT"`
	Verbose bool          `env:"ORG_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".organizer"),
			Filename:       "organizer.db",
			Key:            "camilaOrganization",
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Calendar: CalendarConfig{
			WeekStart:      "sunday",
			ProjectionDays: 30,
			Timezone:       "Local",
		},
		Validation: ValidationConfig{
			TextMaxLength: 500,
			NameMaxLength: 100,
		},
		Display: DisplayConfig{
			DateFormat: "02/01/2006",
			Color:      true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetLockPath returns the path of the lock file guarding the data directory
func (c *Config) GetLockPath() string {
	return filepath.Join(c.Storage.Dir, "organizer.lock")
}

// WeekStartDay returns the configured first day of the week
func (c *Config) WeekStartDay() time.Weekday {
	day, _ := ParseWeekday(c.Calendar.WeekStart)
	return day
}

// Location returns the configured time zone
func (c *Config) Location() (*time.Location, error) {
	switch c.Calendar.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Calendar.Timezone)
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"domingo":   time.Sunday,
	"segunda":   time.Monday,
	"terça":     time.Tuesday,
	"terca":     time.Tuesday,
	"quarta":    time.Wednesday,
	"quinta":    time.Thursday,
	"sexta":     time.Friday,
	"sábado":    time.Saturday,
	"sabado":    time.Saturday,
}

// ParseWeekday parses an English or Portuguese weekday name
func ParseWeekday(s string) (time.Weekday, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	return day, ok
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("ORG_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("ORG_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("ORG_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if timeout := os.Getenv("ORG_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}
	if perms := os.Getenv("ORG_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Calendar configuration
	if weekStart := os.Getenv("ORG_WEEK_START"); weekStart != "" {
		c.Calendar.WeekStart = weekStart
	}
	if days := os.Getenv("ORG_PROJECTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Calendar.ProjectionDays = n
		}
	}
	if tz := os.Getenv("ORG_TIMEZONE"); tz != "" {
		c.Calendar.Timezone = tz
	}

	// Validation configuration
	if maxLen := os.Getenv("ORG_TEXT_MAX_LENGTH"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TextMaxLength = n
		}
	}
	if maxLen := os.Getenv("ORG_NAME_MAX_LENGTH"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.NameMaxLength = n
		}
	}

	// Display configuration
	if format := os.Getenv("ORG_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if color := os.Getenv("ORG_COLOR"); color != "" {
		if b, err := strconv.ParseBool(color); err == nil {
			c.Display.Color = b
		}
	}

	// Logging configuration
	if level := os.Getenv("ORG_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("ORG_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if file := os.Getenv("ORG_LOG_FILE"); file != "" {
		c.Logging.File = file
	}

	// Application configuration
	if timeout := os.Getenv("ORG_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("ORG_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate calendar configuration
	if _, ok := ParseWeekday(c.Calendar.WeekStart); !ok {
		return &ConfigError{Field: "calendar.week_start", Message: "unknown weekday: " + c.Calendar.WeekStart}
	}
	if c.Calendar.ProjectionDays < 0 || c.Calendar.ProjectionDays > 366 {
		return &ConfigError{Field: "calendar.projection_days", Message: "projection window must be between 0 and 366 days"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "calendar.timezone", Message: "unknown time zone: " + c.Calendar.Timezone}
	}

	// Validate validation configuration
	if c.Validation.TextMaxLength < 1 {
		return &ConfigError{Field: "validation.text_max_length", Message: "text maximum length must be at least 1"}
	}
	if c.Validation.NameMaxLength < 1 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate logging configuration
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown log level: " + c.Logging.Level}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be console or json"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
