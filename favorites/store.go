// Package favorites persists the user's saved recipes as a JSON array on disk.
//
// The store assumes a single process; there is no file locking.
package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ajikko/aji/api"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// ErrorCode defines error types for favorites operations
type ErrorCode string

const (
	// ErrCorruptFile represents a favorites file that is not valid JSON
	ErrCorruptFile ErrorCode = "CorruptFavoritesFile"
	// ErrNotFavorite represents a removal of a recipe that was never saved
	ErrNotFavorite ErrorCode = "NotFavorite"
	// ErrWriteFailed represents a failure persisting the favorites file
	ErrWriteFailed ErrorCode = "WriteFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Store reads and writes the favorites file
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads all saved recipes. A missing file yields an empty list.
func (s *Store) Load() ([]api.Recipe, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []api.Recipe{}, nil
	}
	if err != nil {
		return nil, failure.Wrap(err)
	}

	var recipes []api.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, failure.New(ErrCorruptFile,
			failure.Message("Favorites file is not valid JSON. Fix or remove it."),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}
	return recipes, nil
}

// Save writes the full favorites list, replacing the file atomically
func (s *Store) Save(recipes []api.Recipe) error {
	data, err := json.MarshalIndent(recipes, "", "    ")
	if err != nil {
		return failure.Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return failure.New(ErrWriteFailed,
			failure.Message("Could not create favorites directory"),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}

	// Write-then-rename so a crash mid-write never truncates the file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".favorites-*.json")
	if err != nil {
		return failure.Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return failure.Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return failure.Wrap(err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return failure.New(ErrWriteFailed,
			failure.Message("Could not save favorites"),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}
	return nil
}

// Add saves a recipe. Adding a recipe that is already saved is a no-op.
func (s *Store) Add(r api.Recipe) error {
	recipes, err := s.Load()
	if err != nil {
		return err
	}

	if lo.ContainsBy(recipes, func(f api.Recipe) bool { return f.ID == r.ID }) {
		return nil
	}

	recipes = append(recipes, r)
	return s.Save(recipes)
}

// Remove deletes a recipe by ID
func (s *Store) Remove(id int) error {
	recipes, err := s.Load()
	if err != nil {
		return err
	}

	kept := lo.Reject(recipes, func(f api.Recipe, _ int) bool { return f.ID == id })
	if len(kept) == len(recipes) {
		return failure.New(ErrNotFavorite,
			failure.Message("Recipe is not in your favorites"),
			failure.Context{"id": strconv.Itoa(id)},
		)
	}
	return s.Save(kept)
}

// Contains reports whether a recipe ID is saved
func (s *Store) Contains(id int) (bool, error) {
	recipes, err := s.Load()
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(recipes, func(f api.Recipe) bool { return f.ID == id }), nil
}

// Get returns a saved recipe by ID; ok is false when absent
func (s *Store) Get(id int) (api.Recipe, bool, error) {
	recipes, err := s.Load()
	if err != nil {
		return api.Recipe{}, false, err
	}
	r, ok := lo.Find(recipes, func(f api.Recipe) bool { return f.ID == id })
	return r, ok, nil
}
