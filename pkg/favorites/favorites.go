// Package favorites tracks favorited prompt identities and guards the
// once-per-session rating rule. Favorites live outside the undo/redo
// history: toggling one is never undoable.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// ErrAlreadyRated is returned when a prompt was already rated this session.
var ErrAlreadyRated = errors.New("favorites: prompt already rated this session")

// Set holds favorited prompt identities. It serializes as a sorted list
// of identity strings for stable storage.
type Set map[prompt.ID]struct{}

// Has reports membership. Identities of since-deleted prompts may linger
// in the set; downstream filtering ignores them.
func (s Set) Has(id prompt.ID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	return json.Marshal(ids)
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	out := make(Set, len(ids))
	for _, raw := range ids {
		id, err := prompt.ParseID(raw)
		if err != nil {
			return err
		}
		out[id] = struct{}{}
	}
	*s = out
	return nil
}

// Saver persists the favorites set after each change. Save failures are
// reported as warnings; the in-memory set stays authoritative.
type Saver interface {
	SaveFavorites(Set) error
}

// Tracker owns the favorites set and the session-local record of which
// prompts have been rated. Rated flags are never persisted.
type Tracker struct {
	set   Set
	rated map[prompt.ID]struct{}
	saver Saver
}

// NewTracker starts a tracker from the set loaded out of the durable
// store. A nil set starts empty.
func NewTracker(set Set, saver Saver) *Tracker {
	if set == nil {
		set = make(Set)
	}
	return &Tracker{
		set:   set,
		rated: make(map[prompt.ID]struct{}),
		saver: saver,
	}
}

// Toggle flips membership of id and reports the new state. The id is not
// validated against the collection; favoriting a deleted prompt is
// harmless. The returned error, if any, is a persistence warning.
func (t *Tracker) Toggle(id prompt.ID) (favorited bool, err error) {
	if t.set.Has(id) {
		delete(t.set, id)
	} else {
		t.set[id] = struct{}{}
		favorited = true
	}
	if t.saver != nil {
		err = t.saver.SaveFavorites(t.set)
	}
	return favorited, err
}

// IsFavorite reports whether id is favorited.
func (t *Tracker) IsFavorite(id prompt.ID) bool {
	return t.set.Has(id)
}

// Set exposes the current favorites for the display pipeline.
func (t *Tracker) Set() Set {
	return t.set
}

// HasRated reports whether id was rated earlier in this session.
func (t *Tracker) HasRated(id prompt.ID) bool {
	_, ok := t.rated[id]
	return ok
}

// Rate folds an integer score in [1,5] into the prompt's running average
// and marks the prompt rated for the rest of the session. Rating is
// metadata, not content: it appends no version and creates no undo step.
// Built-in prompts are immutable, so rating one is rejected with
// prompt.ErrImmutable rather than silently dropped.
func (t *Tracker) Rate(p *prompt.Prompt, score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("favorites: score %d out of range [1,5]", score)
	}
	if t.HasRated(p.ID) {
		return ErrAlreadyRated
	}
	if !p.ID.Custom() {
		return prompt.ErrImmutable
	}
	total := p.Rating*float64(p.RatingCount) + float64(score)
	p.RatingCount++
	p.Rating = total / float64(p.RatingCount)
	t.rated[p.ID] = struct{}{}
	return nil
}
