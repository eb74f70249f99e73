// Package config assembles runtime settings for the catalog browser.
// Sources are applied in order (defaults, environment, JSON file,
// command-line flags) with later sources taking precedence.
package config

// Config holds runtime settings for the shopwindow CLI.
//
// Fields:
//   - BaseURL: scheme://host of the remote catalog API.
//   - SessionDBPath: path of the local sqlite DB holding the session token.
type Config struct {
	BaseURL       string
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://dummyjson.com"
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), JSON (if present) and
// command-line flags (if present). Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
