package config

import (
	"testing"

	"github.com/morikuni/failure/v2"
)

func TestLoad(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		t.Setenv("SPOONACULAR_API_KEY", "")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() expected error, got nil")
		}
		if !failure.Is(err, ErrMissingAPIKey) {
			t.Errorf("Load() error = %v, want code %v", err, ErrMissingAPIKey)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("SPOONACULAR_API_KEY", "test-key")
		t.Setenv("AJI_BASE_URL", "")
		t.Setenv("AJI_FAVORITES_FILE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
		}
		if cfg.FavoritesPath == "" {
			t.Error("FavoritesPath is empty")
		}
	})

	t.Run("overrides respected", func(t *testing.T) {
		t.Setenv("SPOONACULAR_API_KEY", "test-key")
		t.Setenv("AJI_BASE_URL", "http://localhost:8080")
		t.Setenv("AJI_FAVORITES_FILE", "/tmp/favs.json")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.BaseURL != "http://localhost:8080" {
			t.Errorf("BaseURL = %q", cfg.BaseURL)
		}
		if cfg.FavoritesPath != "/tmp/favs.json" {
			t.Errorf("FavoritesPath = %q", cfg.FavoritesPath)
		}
	})
}
