package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/library"
)

// The store keeps everything under two logical keys: the serialized
// custom collection and the serialized favorites set.
const (
	keyLibrary   = "library"
	keyFavorites = "favorites"
)

// Persistence is the durable key-value contract for the prompt library.
// Loads never fail: absent or malformed data falls back to the empty
// default (logged to stderr, never fatal). Saves report failures as
// PersistenceWarning values; the in-memory state that triggered the save
// stays authoritative for the session.
type Persistence interface {
	LoadLibrary() library.Collection
	SaveLibrary(library.Collection) error
	LoadFavorites() favorites.Set
	SaveFavorites(favorites.Set) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// PersistenceWarning reports a durable write that failed after the
// corresponding in-memory mutation already succeeded. Warning-class:
// callers surface it but do not roll back.
type PersistenceWarning struct {
	Key string
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("store: write of %q failed after in-memory commit: %v", w.Key, w.Err)
}

func (w *PersistenceWarning) Unwrap() error {
	return w.Err
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadLibrary() library.Collection {
	data, err := p.d.Read(keyLibrary)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", keyLibrary, err)
		}
		return nil
	}
	var c library.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		fmt.Fprintf(os.Stderr, "store: malformed %s data, starting empty: %v\n", keyLibrary, err)
		return nil
	}
	return c
}

func (p *persistence) SaveLibrary(c library.Collection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return &PersistenceWarning{Key: keyLibrary, Err: err}
	}
	if err := p.d.Write(keyLibrary, data); err != nil {
		return &PersistenceWarning{Key: keyLibrary, Err: err}
	}
	return nil
}

func (p *persistence) LoadFavorites() favorites.Set {
	data, err := p.d.Read(keyFavorites)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", keyFavorites, err)
		}
		return nil
	}
	var s favorites.Set
	if err := json.Unmarshal(data, &s); err != nil {
		fmt.Fprintf(os.Stderr, "store: malformed %s data, starting empty: %v\n", keyFavorites, err)
		return nil
	}
	return s
}

func (p *persistence) SaveFavorites(s favorites.Set) error {
	data, err := json.Marshal(s)
	if err != nil {
		return &PersistenceWarning{Key: keyFavorites, Err: err}
	}
	if err := p.d.Write(keyFavorites, data); err != nil {
		return &PersistenceWarning{Key: keyFavorites, Err: err}
	}
	return nil
}
