package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultKey is the key the snapshot is stored under.
const DefaultKey = "camilaOrganization"

// BackupSuffix is appended to the key to form the backup key.
const BackupSuffix = ".bak"

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how task and plan ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithLocation sets the time zone stored dates are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithWriteTimeout bounds each snapshot write. Zero disables the bound.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.writeTimeout = d
	}
}

func newUUID() string {
	return uuid.NewString()
}
