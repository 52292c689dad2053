package favorites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajikko/aji/api"
	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "favorites.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	if !failure.Is(err, ErrCorruptFile) {
		t.Errorf("error = %v, want code %v", err, ErrCorruptFile)
	}
}

func TestAddAndLoad(t *testing.T) {
	s := newTestStore(t)

	r := api.Recipe{ID: 42, Title: "Pasta", SourceURL: "https://example.com"}
	if err := s.Add(r); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]api.Recipe{r}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddIdempotent(t *testing.T) {
	s := newTestStore(t)

	r := api.Recipe{ID: 42, Title: "Pasta"}
	for range 3 {
		if err := s.Add(r); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	got, _ := s.Load()
	if len(got) != 1 {
		t.Errorf("Load() returned %d recipes, want 1", len(got))
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(api.Recipe{ID: 1, Title: "Keep"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(api.Recipe{ID: 2, Title: "Drop"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Remove(2); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, _ := s.Load()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Load() = %+v, want only ID 1", got)
	}
}

func TestRemoveNotFavorite(t *testing.T) {
	s := newTestStore(t)

	err := s.Remove(99)
	if err == nil {
		t.Fatal("Remove() expected error, got nil")
	}
	if !failure.Is(err, ErrNotFavorite) {
		t.Errorf("error = %v, want code %v", err, ErrNotFavorite)
	}
}

func TestContainsAndGet(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(api.Recipe{ID: 7, Title: "Soup"}); err != nil {
		t.Fatal(err)
	}

	ok, err := s.Contains(7)
	if err != nil || !ok {
		t.Errorf("Contains(7) = %v, %v", ok, err)
	}
	ok, err = s.Contains(8)
	if err != nil || ok {
		t.Errorf("Contains(8) = %v, %v", ok, err)
	}

	r, ok, err := s.Get(7)
	if err != nil || !ok || r.Title != "Soup" {
		t.Errorf("Get(7) = %+v, %v, %v", r, ok, err)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "nested", "deep", "favorites.json"))

	if err := s.Save([]api.Recipe{{ID: 1}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("favorites file not created: %v", err)
	}
}
