// Package app wires the prompt library together: the durable store, the
// undo/redo history over the custom collection, the favorites tracker,
// and the built-in catalog. A single Service instance owns all mutable
// state for a session; nothing in the core lives at package level.
package app

import (
	"context"
	"errors"

	"github.com/rajatvarna/PromptDB/pkg/catalog"
	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/history"
	"github.com/rajatvarna/PromptDB/pkg/library"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
	"github.com/rajatvarna/PromptDB/pkg/store"
	"github.com/rajatvarna/PromptDB/pkg/template"
	"github.com/rajatvarna/PromptDB/pkg/view"
)

// Service provides high-level operations over the merged prompt library.
// Mutations of the custom collection always route through the history
// manager; favorites and ratings deliberately bypass it.
//
// Methods that commit an in-memory mutation may return a
// *store.PersistenceWarning: the mutation has succeeded and the warning
// only reports that the durable write behind it failed.
type Service struct {
	Persistence store.Persistence
	Store       *library.Store
	History     *history.History
	Tracker     *favorites.Tracker

	// Static holds the read-only built-in prompts merged after the
	// custom collection.
	Static []*prompt.Prompt
}

// New constructs a Service from the durable store. Malformed or missing
// stored data has already been reduced to empty defaults by the store.
func New(p store.Persistence, cfg store.Config) *Service {
	st := library.NewStore()
	if cfg != nil {
		st.Keep = cfg.VersionsKeep()
	}
	return &Service{
		Persistence: p,
		Store:       st,
		History:     history.New(p.LoadLibrary(), p),
		Tracker:     favorites.NewTracker(p.LoadFavorites(), p),
		Static:      catalog.Builtin(),
	}
}

// Merged returns the display collection: custom prompts first (newest
// leading), then the built-in catalog. The slice is fresh; the prompts
// are the live values.
func (s *Service) Merged() []*prompt.Prompt {
	custom := s.History.Present()
	out := make([]*prompt.Prompt, 0, len(custom)+len(s.Static))
	out = append(out, custom...)
	out = append(out, s.Static...)
	return out
}

// List runs the filter-sort pipeline over the merged collection.
func (s *Service) List(q view.Query) []*prompt.Prompt {
	return view.Apply(s.Merged(), q, s.Tracker.Set())
}

// Stats reports how much of the library a derived view shows.
func (s *Service) Stats(displayed []*prompt.Prompt) view.Stats {
	return view.Stats{Displayed: len(displayed), Total: len(s.Merged())}
}

// Get finds a prompt by identity across both origins.
func (s *Service) Get(id prompt.ID) (*prompt.Prompt, error) {
	if p := s.History.Present().Find(id); p != nil {
		return p, nil
	}
	for _, p := range s.Static {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, &prompt.NotFoundError{ID: id}
}

// Create validates the draft and commits a new custom prompt through the
// history manager.
func (s *Service) Create(d prompt.Draft) (*prompt.Prompt, error) {
	next, created, err := s.Store.Create(s.History.Present(), d)
	if err != nil {
		return nil, err
	}
	return created, s.History.Apply(next)
}

// Update edits a custom prompt, snapshotting its prior fields as a new
// version, and commits through the history manager.
func (s *Service) Update(id prompt.ID, d prompt.Draft) error {
	next, err := s.Store.Update(s.History.Present(), id, d)
	if err != nil {
		return err
	}
	return s.History.Apply(next)
}

// Delete removes a custom prompt and its versions, committed through the
// history manager.
func (s *Service) Delete(id prompt.ID) error {
	next, err := s.Store.Delete(s.History.Present(), id)
	if err != nil {
		return err
	}
	return s.History.Apply(next)
}

// Undo steps the custom collection back one state.
func (s *Service) Undo() error { return s.History.Undo() }

// Redo re-applies the most recently undone state.
func (s *Service) Redo() error { return s.History.Redo() }

// ToggleFavorite flips membership and reports the new state. Favorites
// are not undoable, and unknown identities are accepted as harmless.
func (s *Service) ToggleFavorite(id prompt.ID) (bool, error) {
	return s.Tracker.Toggle(id)
}

// Rate folds a score into a custom prompt's running average. Rating is
// metadata: it creates no version and no undo step, but the changed
// collection is written straight to the durable store. Rating a built-in
// prompt fails with prompt.ErrImmutable; rating twice in a session fails
// with favorites.ErrAlreadyRated.
func (s *Service) Rate(id prompt.ID, score int) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Tracker.Rate(p, score); err != nil {
		return err
	}
	return s.Persistence.SaveLibrary(s.History.Present())
}

// Versions lists a custom prompt's stored versions, oldest first.
func (s *Service) Versions(id prompt.ID) ([]prompt.Version, error) {
	p := s.History.Present().Find(id)
	if p == nil {
		return nil, &prompt.NotFoundError{ID: id}
	}
	return p.Versions, nil
}

// RestoreVersion re-applies a stored version through the normal update
// path, so the restore itself is versioned and undoable.
func (s *Service) RestoreVersion(id prompt.ID, version int) error {
	d, err := s.Store.RestoreVersion(s.History.Present(), id, version)
	if err != nil {
		return err
	}
	return s.Update(id, d)
}

// Variables returns the distinct placeholder names in a prompt's body.
func (s *Service) Variables(id prompt.ID) ([]string, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return template.Extract(p.Body), nil
}

// Render substitutes values into a prompt's body. Tokens without a
// supplied value stay in place.
func (s *Service) Render(id prompt.ID, values map[string]string) (string, error) {
	p, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return template.Render(p.Body, values), nil
}

// Watch subscribes to durable-store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// IsWarning reports whether err is a persistence warning: the mutation
// committed in memory and only the durable write failed.
func IsWarning(err error) bool {
	var w *store.PersistenceWarning
	return errors.As(err, &w)
}
