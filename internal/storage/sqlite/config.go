package sqlite

import "time"

// Config holds SQLite settings
type Config struct {
	// Path is the database file, created along with its directory if missing
	Path string

	BusyTimeout time.Duration
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path:        "data/wordtiles.db",
		BusyTimeout: 5 * time.Second,
	}
}
