package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config describes all runtime settings for the tools.
//
// Best practice for Go programs:
//   - load config once in main
//   - validate
//   - pass further via DI (no global variables)
type Config struct {
	Env string // dev|stage|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Game struct {
		// Seed pins the secret sequence for a reproducible game.
		// 0 means fresh entropy on every run.
		Seed uint64
	}
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "warn")
	c.Game.Seed = envUint64("BNC_SEED", 0)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Env {
	case "dev", "stage", "prod":
	default:
		return fmt.Errorf("unsupported APP_ENV=%q (want dev|stage|prod)", c.Env)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	if c.Env == "prod" && c.Game.Seed != 0 {
		return fmt.Errorf("refuse to run with a pinned BNC_SEED in %s", c.Env)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
