package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for the sizzle MCP server.
// Precedence: environment variables > config file > defaults.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Transport TransportConfig `toml:"transport"`
	Log       LogConfig       `toml:"log"`
}

// ServerConfig holds MCP server metadata.
type ServerConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// TransportConfig holds transport-related settings.
type TransportConfig struct {
	// Mode selects the transport: "stdio" (default), "http", or "ws".
	Mode string `toml:"mode"`
	// Port is the listen port (default: 21453). Used by "http" and "ws".
	Port string `toml:"port"`
	// Host is the listen address (default: "0.0.0.0").
	Host string `toml:"host"`
	// CORSOrigins is a comma-separated list of allowed CORS origins (default: "*").
	CORSOrigins string `toml:"cors_origins"`
	// RateLimitPerSecond bounds tools/call throughput per session.
	RateLimitPerSecond float64 `toml:"rate_limit_per_second"`
	// RateLimitBurst is the token-bucket burst size.
	RateLimitBurst int `toml:"rate_limit_burst"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Load creates a Config by reading from a TOML config file and
// environment variables. Precedence: environment variables > config
// file > defaults.
//
// Config file search order (first found wins):
//  1. Path passed via configPath parameter (from --config flag)
//  2. SIZZLE_CONFIG environment variable
//  3. ./sizzle.toml (current directory)
//  4. ~/.config/sizzle/sizzle.toml (XDG-style)
//
// All fields are optional in the config file. Environment variables
// always override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Name:    "sizzlemcp",
			Version: "0.1.0",
		},
		Transport: TransportConfig{
			Mode:               "stdio",
			Port:               "21453",
			Host:               "0.0.0.0",
			CORSOrigins:        "*",
			RateLimitPerSecond: 20,
			RateLimitBurst:     40,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if err := cfg.loadFile(configPath); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile finds and parses the TOML config file. If no file is found,
// this is a no-op (config file is optional).
func (c *Config) loadFile(configPath string) error {
	path := resolveConfigPath(configPath)
	if path == "" {
		return nil
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	return nil
}

// resolveConfigPath determines which config file to use. Returns empty
// string if no config file is found (config file is optional).
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if p := os.Getenv("SIZZLE_CONFIG"); p != "" {
		return p
	}

	if _, err := os.Stat("sizzle.toml"); err == nil {
		return "sizzle.toml"
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := home + "/.config/sizzle/sizzle.toml"
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnv overlays environment variables on top of existing config
// values. An env var only takes effect if it is non-empty.
func (c *Config) applyEnv() {
	envOverride("SIZZLE_TRANSPORT", &c.Transport.Mode)
	envOverride("SIZZLE_PORT", &c.Transport.Port)
	envOverride("SIZZLE_HOST", &c.Transport.Host)
	envOverride("SIZZLE_CORS_ORIGINS", &c.Transport.CORSOrigins)

	envOverride("SIZZLE_LOG_LEVEL", &c.Log.Level)
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	switch c.Transport.Mode {
	case "stdio", "http", "ws":
	default:
		return fmt.Errorf("invalid transport mode: %q (must be \"stdio\", \"http\", or \"ws\")", c.Transport.Mode)
	}
	return nil
}

// envOverride sets *dst to the value of the named env var, if it is non-empty.
func envOverride(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
