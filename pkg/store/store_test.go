package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/library"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) VersionsKeep() int { return 0 }
func (t testConfig) Model() string     { return "" }

func TestLibraryRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	c := library.Collection{
		{
			ID:          prompt.CustomID(1700000000000),
			Title:       "Stored",
			Description: "kept on disk",
			Body:        "analyze [Company]",
			Category:    prompt.CategoryValuation,
			Tags:        []string{"dcf"},
			Versions: []prompt.Version{
				{
					Created: prompt.Timestamp{Time: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
					Title:   "Old Title",
					Body:    "old body",
				},
			},
		},
	}
	if err := p.SaveLibrary(c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadLibrary()
	if len(got) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(got))
	}
	if got[0].ID != c[0].ID || got[0].Title != "Stored" {
		t.Fatalf("round trip mismatch: %+v", got[0])
	}
	if len(got[0].Versions) != 1 || got[0].Versions[0].Title != "Old Title" {
		t.Fatalf("versions lost in round trip: %+v", got[0].Versions)
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	set := favorites.Set{
		prompt.StaticID(3):             {},
		prompt.CustomID(1700000000001): {},
	}
	if err := p.SaveFavorites(set); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadFavorites()
	if len(got) != 2 || !got.Has(prompt.StaticID(3)) {
		t.Fatalf("round trip lost favorites: %v", got)
	}
}

func TestLoadMissingDataStartsEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if c := p.LoadLibrary(); len(c) != 0 {
		t.Fatalf("expected empty collection, got %d", len(c))
	}
	if s := p.LoadFavorites(); len(s) != 0 {
		t.Fatalf("expected empty favorites, got %d", len(s))
	}
}

func TestLoadMalformedDataFallsBackToEmpty(t *testing.T) {
	base := t.TempDir()
	for _, key := range []string{keyLibrary, keyFavorites} {
		if err := os.WriteFile(filepath.Join(base, key), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("seed malformed file: %v", err)
		}
	}

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if c := p.LoadLibrary(); len(c) != 0 {
		t.Fatalf("malformed library must fall back to empty, got %d", len(c))
	}
	if s := p.LoadFavorites(); len(s) != 0 {
		t.Fatalf("malformed favorites must fall back to empty, got %d", len(s))
	}
}

func TestPersistenceWarningIdentifiesKey(t *testing.T) {
	// Point the store at a path that cannot exist below a regular file.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed blocker: %v", err)
	}

	p, err := Load(testConfig{path: filepath.Join(blocker, "nested")})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	saveErr := p.SaveLibrary(nil)
	var warning *PersistenceWarning
	if !errors.As(saveErr, &warning) {
		t.Fatalf("expected PersistenceWarning, got %v", saveErr)
	}
	if warning.Key != keyLibrary {
		t.Fatalf("warning names key %q", warning.Key)
	}
}

func TestWatchClassifiesKeys(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.SaveFavorites(favorites.Set{prompt.StaticID(1): {}}); err != nil {
		t.Fatalf("save favorites: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventFavoritesChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for favorites change event")
		}
	}
}
