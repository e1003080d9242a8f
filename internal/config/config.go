// Package config loads runtime settings for the library catalog app.
// Sources are applied in order: defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources take precedence.
package config

// Config holds runtime settings for the catalog application.
//
// DatabaseDSN selects the storage backend: a plain file path (or ":memory:")
// opens a local SQLite database; a postgres:// or postgresql:// URL opens a
// shared PostgreSQL database.
type Config struct {
	DatabaseDSN string
	LogLevel    string
	LogFormat   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "biblioteca.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
