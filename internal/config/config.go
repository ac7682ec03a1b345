package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIURL    = "http://localhost:8080/api/v1/"
	defaultTimeout   = 30 * time.Second
	defaultRecentMax = 6
)

type Config struct {
	ServerPort  string
	DatabaseURL string

	// Home is the on-device state directory (session, recent searches).
	Home       string
	Passphrase string
	RecentMax  int

	API struct {
		BaseURL string
		Timeout time.Duration
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  os.Getenv("SERVER_PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Home:        os.Getenv("SHOP_HOME"),
		Passphrase:  os.Getenv("SHOP_PASSPHRASE"),
		RecentMax:   defaultRecentMax,
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8081"
	}

	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.Home = filepath.Join(dir, ".shop")
	}

	cfg.API.BaseURL = os.Getenv("SHOP_API_URL")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultAPIURL
	}

	cfg.API.Timeout = defaultTimeout
	if raw := os.Getenv("SHOP_API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("SHOP_API_TIMEOUT must be a positive duration, got %q", raw)
		}
		cfg.API.Timeout = d
	}

	if raw := os.Getenv("SHOP_RECENT_MAX"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("SHOP_RECENT_MAX must be a positive integer, got %q", raw)
		}
		cfg.RecentMax = n
	}

	return cfg, nil
}
