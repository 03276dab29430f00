package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type EastMoney struct {
	// Endpoint overrides the built-in kline endpoint. Empty means the default.
	Endpoint          string `json:"endpoint"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Config struct {
	EastMoney EastMoney `json:"eastmoney"`
}

func Default() Config {
	return Config{
		EastMoney: EastMoney{RequestTimeoutSec: 30},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("EASTMONEY_ENDPOINT"); v != "" {
		cfg.EastMoney.Endpoint = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.EastMoney.RequestTimeoutSec = x
		}
	}
}
