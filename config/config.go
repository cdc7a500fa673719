package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable, e.g. CRYPTOPAY_API_TOKEN.
const EnvPrefix = "CRYPTOPAY"

type Config struct {
	APIToken  string        `envconfig:"API_TOKEN"`
	BaseURL   string        `envconfig:"BASE_URL"`
	Network   string        `envconfig:"NETWORK"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"console"`
	RedisURL  string        `envconfig:"REDIS_URL"`
	Metrics   bool          `envconfig:"METRICS" default:"false"`
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.APIToken = strings.TrimSpace(cfg.APIToken)
	cfg.Network = strings.ToLower(strings.TrimSpace(cfg.Network))
	if cfg.Network != "" && cfg.Network != NetworkMainnet && cfg.Network != NetworkTestnet {
		return nil, fmt.Errorf("invalid %s_NETWORK %q: use mainnet or testnet", EnvPrefix, cfg.Network)
	}
	return &cfg, nil
}

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)
