package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "https://api.foldergram.dev/v1"

// Config holds runtime settings for the CLI app.
type Config struct {
	APIToken   string
	APIBaseURL string
	DBPath     string
	SOCKSProxy string
	Theme      string
}

func LoadFromEnv() (Config, error) {
	// Optional .env in the working directory; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{
		APIToken:   os.Getenv("FOLDERGRAM_API_TOKEN"),
		APIBaseURL: os.Getenv("FOLDERGRAM_API_BASE_URL"),
		DBPath:     os.Getenv("FOLDERGRAM_DB_PATH"),
		SOCKSProxy: os.Getenv("FOLDERGRAM_SOCKS_PROXY"),
		Theme:      os.Getenv("FOLDERGRAM_THEME"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "foldergram.db"
	}
	if cfg.Theme == "" {
		cfg.Theme = "dark"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIToken == "" {
		return errors.New("FOLDERGRAM_API_TOKEN is required")
	}
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("Theme must be dark or light: %s", c.Theme)
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	return nil
}
