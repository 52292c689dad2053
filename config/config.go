// Package config resolves runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for configuration loading
type ErrorCode string

const (
	// ErrMissingAPIKey represents a missing Spoonacular API key
	ErrMissingAPIKey ErrorCode = "MissingAPIKey"
	// ErrInvalidConfig represents a config that failed validation
	ErrInvalidConfig ErrorCode = "InvalidConfig"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// DefaultBaseURL is the Spoonacular API endpoint
const DefaultBaseURL = "https://api.spoonacular.com"

var validate = validator.New()

// Config holds everything the CLI needs from the environment
type Config struct {
	// APIKey authenticates with the Spoonacular API (SPOONACULAR_API_KEY)
	APIKey string `validate:"required"`

	// BaseURL is the API endpoint, overridable via AJI_BASE_URL
	BaseURL string `validate:"required,url"`

	// FavoritesPath is the favorites JSON file, overridable via AJI_FAVORITES_FILE
	FavoritesPath string `validate:"required"`
}

// Load reads configuration from environment variables and applies defaults
func Load() (Config, error) {
	cfg := Config{
		APIKey:        os.Getenv("SPOONACULAR_API_KEY"),
		BaseURL:       os.Getenv("AJI_BASE_URL"),
		FavoritesPath: os.Getenv("AJI_FAVORITES_FILE"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.FavoritesPath == "" {
		cfg.FavoritesPath = defaultFavoritesPath()
	}

	if cfg.APIKey == "" {
		return Config{}, failure.New(ErrMissingAPIKey,
			failure.Message("Spoonacular API key not found. Set the SPOONACULAR_API_KEY environment variable."),
		)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, failure.New(ErrInvalidConfig,
			failure.Message("Invalid configuration"),
			failure.Context{"error": err.Error()},
		)
	}

	return cfg, nil
}

// FavoritesPath resolves the favorites file location without requiring
// the rest of the configuration (favorites work with no API key set)
func FavoritesPath() string {
	if p := os.Getenv("AJI_FAVORITES_FILE"); p != "" {
		return p
	}
	return defaultFavoritesPath()
}

func defaultFavoritesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "aji", "favorites.json")
	}
	return filepath.Join(dir, "aji", "favorites.json")
}
