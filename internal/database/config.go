package database

// DefaultDSN keeps the audit log in a private in-memory SQLite database that
// lives as long as the process.
const DefaultDSN = "file:finboard-audit?mode=memory&cache=shared"

// Config holds database configuration
type Config struct {
	DSN string
}

// NewConfig creates a database configuration, falling back to DefaultDSN.
func NewConfig(dsn string) *Config {
	if dsn == "" {
		dsn = DefaultDSN
	}
	return &Config{DSN: dsn}
}
