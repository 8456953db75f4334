// Package config loads runtime settings for the board CLI. Values come from
// defaults, an optional JSON file and command-line flags, in that order.
package config

// Config holds runtime settings for the board CLI.
//
// Fields:
//   - ServerURL: base URL of the board server, e.g. http://127.0.0.1:8080.
//   - DatabaseDSN: path of the local SQLite file holding the unlock state.
type Config struct {
	ServerURL   string
	DatabaseDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabaseDSN = "wallpaper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
