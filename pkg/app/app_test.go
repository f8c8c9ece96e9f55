package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/library"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
	"github.com/rajatvarna/PromptDB/pkg/store"
	"github.com/rajatvarna/PromptDB/pkg/view"
)

type memoryPersistence struct {
	library   library.Collection
	favorites favorites.Set

	saveLibErr error
	libSaves   int
	favSaves   int
}

func (m *memoryPersistence) LoadLibrary() library.Collection { return m.library.Clone() }

func (m *memoryPersistence) SaveLibrary(c library.Collection) error {
	m.libSaves++
	if m.saveLibErr != nil {
		return &store.PersistenceWarning{Key: "library", Err: m.saveLibErr}
	}
	m.library = c.Clone()
	return nil
}

func (m *memoryPersistence) LoadFavorites() favorites.Set { return m.favorites }

func (m *memoryPersistence) SaveFavorites(s favorites.Set) error {
	m.favSaves++
	m.favorites = s
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, errors.New("memory persistence does not watch")
}

func draft(title string) prompt.Draft {
	return prompt.Draft{
		Title:       title,
		Description: "a " + title,
		Body:        "Analyze [Company].",
		Category:    prompt.CategoryInvestmentResearch,
	}
}

func TestCreateAppearsFirstInMergedView(t *testing.T) {
	s := New(&memoryPersistence{}, nil)

	created, err := s.Create(draft("Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.ID.Custom() {
		t.Fatalf("expected custom identity, got %s", created.ID)
	}

	merged := s.Merged()
	if len(merged) != 1+len(s.Static) {
		t.Fatalf("merged has %d prompts, want %d", len(merged), 1+len(s.Static))
	}
	if merged[0].ID != created.ID {
		t.Fatalf("expected new prompt first, got %s", merged[0].ID)
	}
}

func TestGetSpansBothOrigins(t *testing.T) {
	s := New(&memoryPersistence{}, nil)
	created, err := s.Create(draft("Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Get(created.ID); err != nil {
		t.Fatalf("get custom: %v", err)
	}
	if _, err := s.Get(s.Static[0].ID); err != nil {
		t.Fatalf("get builtin: %v", err)
	}
	var nf *prompt.NotFoundError
	if _, err := s.Get(prompt.CustomID(42)); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	mp := &memoryPersistence{}
	s := New(mp, nil)

	created, err := s.Create(draft("Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Update(created.ID, draft("Renamed")); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := s.History.Present().Find(created.ID).Title; got != "Mine" {
		t.Fatalf("after undo title = %q, want Mine", got)
	}
	if err := s.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if got := s.History.Present().Find(created.ID).Title; got != "Renamed" {
		t.Fatalf("after redo title = %q, want Renamed", got)
	}
	if mp.libSaves == 0 {
		t.Fatal("expected durable writes during mutation")
	}
}

func TestMutationSurvivesSaveFailure(t *testing.T) {
	mp := &memoryPersistence{saveLibErr: errors.New("disk full")}
	s := New(mp, nil)

	created, err := s.Create(draft("Mine"))
	if !IsWarning(err) {
		t.Fatalf("expected persistence warning, got %v", err)
	}
	if s.History.Present().Find(created.ID) == nil {
		t.Fatal("in-memory state should keep the prompt despite the failed write")
	}
}

func TestRateWritesWithoutHistoryStep(t *testing.T) {
	mp := &memoryPersistence{}
	s := New(mp, nil)
	created, err := s.Create(draft("Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	undoBefore, _ := s.History.Depth()

	if err := s.Rate(created.ID, 5); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got := created.Rating; got != 5 {
		t.Fatalf("rating = %v, want 5", got)
	}
	if undoAfter, _ := s.History.Depth(); undoAfter != undoBefore {
		t.Fatal("rating must not add an undo step")
	}
	if err := s.Rate(created.ID, 3); !errors.Is(err, favorites.ErrAlreadyRated) {
		t.Fatalf("second rating: got %v, want ErrAlreadyRated", err)
	}
	if err := s.Rate(s.Static[0].ID, 4); !errors.Is(err, prompt.ErrImmutable) {
		t.Fatalf("rating builtin: got %v, want ErrImmutable", err)
	}
}

func TestRestoreVersionIsUndoable(t *testing.T) {
	s := New(&memoryPersistence{}, nil)
	created, err := s.Create(draft("First"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Update(created.ID, draft("Second")); err != nil {
		t.Fatalf("update: %v", err)
	}

	versions, err := s.Versions(created.ID)
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	if len(versions) != 1 || versions[0].Title != "First" {
		t.Fatalf("versions = %+v, want one snapshot of First", versions)
	}

	if err := s.RestoreVersion(created.ID, 0); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := s.History.Present().Find(created.ID).Title; got != "First" {
		t.Fatalf("after restore title = %q, want First", got)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := s.History.Present().Find(created.ID).Title; got != "Second" {
		t.Fatalf("restore should be undoable, title = %q", got)
	}
}

func TestListFiltersMergedCollection(t *testing.T) {
	mp := &memoryPersistence{}
	s := New(mp, nil)
	created, err := s.Create(draft("Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.ToggleFavorite(created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if mp.favSaves != 1 {
		t.Fatalf("favorite toggles written %d times, want 1", mp.favSaves)
	}

	got := s.List(view.Query{Selector: view.SelectorFavorites})
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("favorites view has %d prompts, want just the new one", len(got))
	}

	stats := s.Stats(got)
	if stats.Displayed != 1 || stats.Total != 1+len(s.Static) {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestVariablesAndRender(t *testing.T) {
	s := New(&memoryPersistence{}, nil)
	created, err := s.Create(draft("Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	vars, err := s.Variables(created.ID)
	if err != nil {
		t.Fatalf("variables: %v", err)
	}
	if len(vars) != 1 || vars[0] != "Company" {
		t.Fatalf("variables = %v, want [Company]", vars)
	}

	out, err := s.Render(created.ID, map[string]string{"Company": "ACME"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Analyze ACME." {
		t.Fatalf("render = %q", out)
	}
}
