package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	BaseURL      string
	DatabaseURL  string
	DatabaseType string
	Debounce     time.Duration
}

// ParseFlags validates flags with environment-variable fallback
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var debounceMS int

	fs := flag.NewFlagSet("quickly-meet", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for the local poll cache")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Origin used to build share links")
	fs.IntVar(&debounceMS, "debounce-ms", 0, "Quiet period before persisting a mutation")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:quickly-meet.db"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	if debounceMS == 0 {
		if msStr := os.Getenv("DEBOUNCE_MS"); msStr != "" {
			ms, err := strconv.Atoi(msStr)
			if err != nil {
				return Config{}, errors.New("invalid DEBOUNCE_MS env variable")
			}
			debounceMS = ms
		} else {
			debounceMS = 500 // default
		}
	}
	if debounceMS < 0 {
		return Config{}, errors.New("debounce must not be negative")
	}
	cfg.Debounce = time.Duration(debounceMS) * time.Millisecond

	return cfg, nil
}

// DriverName maps the configured database type to its sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
