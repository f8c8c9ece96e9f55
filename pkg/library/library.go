// Package library owns the user-authored prompt collection and the
// operations that mutate it. Every operation is copy-on-write: it returns
// a fresh Collection value so undo/redo snapshots never alias live state.
package library

import (
	"time"

	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Collection is the ordered set of custom prompts, newest first.
type Collection []*prompt.Prompt

// Clone deep-copies the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, p := range c {
		out[i] = p.Clone()
	}
	return out
}

// Find returns the prompt with the given id, or nil.
func (c Collection) Find(id prompt.ID) *prompt.Prompt {
	if i := c.index(id); i >= 0 {
		return c[i]
	}
	return nil
}

func (c Collection) index(id prompt.ID) int {
	for i, p := range c {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Store performs validated mutations on custom collections. It owns
// identity assignment and the version retention policy; it holds no
// collection state itself.
type Store struct {
	// Keep bounds how many versions a prompt retains after an edit.
	// Zero keeps every version.
	Keep int

	now     func() time.Time
	lastKey int64
}

// NewStore returns a Store using the wall clock for identity and version
// timestamps.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Create validates the draft and returns a new collection with the fresh
// prompt prepended. The new prompt starts unrated with no versions.
func (s *Store) Create(c Collection, d prompt.Draft) (Collection, *prompt.Prompt, error) {
	if err := d.Validate(); err != nil {
		return c, nil, err
	}
	p := &prompt.Prompt{
		ID:          prompt.CustomID(s.nextKey(c)),
		Title:       d.Title,
		Description: d.Description,
		Body:        d.Body,
		Category:    d.Category,
		Tags:        prompt.NormalizeTags(d.Tags),
	}
	out := make(Collection, 0, len(c)+1)
	out = append(out, p)
	out = append(out, c.Clone()...)
	return out, p.Clone(), nil
}

// Update validates the draft, snapshots the prompt's pre-update fields as
// a new version, and applies the draft in place of them. Identity, rating,
// and rating count are preserved. An edit that changes nothing appends no
// version and returns the collection unchanged.
func (s *Store) Update(c Collection, id prompt.ID, d prompt.Draft) (Collection, error) {
	if err := d.Validate(); err != nil {
		return c, err
	}
	i := c.index(id)
	if i < 0 || !id.Custom() {
		return c, &prompt.NotFoundError{ID: id}
	}
	d.Tags = prompt.NormalizeTags(d.Tags)
	if unchanged(c[i], d) {
		return c, nil
	}
	out := c.Clone()
	p := out[i]
	p.Versions = append(p.Versions, prompt.Snapshot(p, s.now()))
	if s.Keep > 0 && len(p.Versions) > s.Keep {
		p.Versions = append([]prompt.Version(nil), p.Versions[len(p.Versions)-s.Keep:]...)
	}
	p.Title = d.Title
	p.Description = d.Description
	p.Body = d.Body
	p.Category = d.Category
	p.Tags = d.Tags
	return out, nil
}

// Delete removes the prompt and its whole version history. Deleting an
// absent id fails; deletion is not idempotent.
func (s *Store) Delete(c Collection, id prompt.ID) (Collection, error) {
	i := c.index(id)
	if i < 0 {
		return c, &prompt.NotFoundError{ID: id}
	}
	out := make(Collection, 0, len(c)-1)
	for j, p := range c {
		if j == i {
			continue
		}
		out = append(out, p.Clone())
	}
	return out, nil
}

// RestoreVersion rebuilds a draft from one of the prompt's stored versions
// so the caller can re-apply it through Update. It does not mutate the
// collection. Versions are addressed oldest-first from zero.
func (s *Store) RestoreVersion(c Collection, id prompt.ID, version int) (prompt.Draft, error) {
	p := c.Find(id)
	if p == nil {
		return prompt.Draft{}, &prompt.NotFoundError{ID: id}
	}
	if version < 0 || version >= len(p.Versions) {
		return prompt.Draft{}, &prompt.NotFoundError{ID: id}
	}
	return p.Versions[version].Draft(), nil
}

// nextKey derives a fresh creation-millis identity key, strictly greater
// than any key already present so identities never collide within a
// session even under same-millisecond creates or clock skew against
// loaded data.
func (s *Store) nextKey(c Collection) int64 {
	key := s.now().UnixMilli()
	if key <= s.lastKey {
		key = s.lastKey + 1
	}
	for _, p := range c {
		if p.ID.Custom() && p.ID.SortKey() >= key {
			key = p.ID.SortKey() + 1
		}
	}
	s.lastKey = key
	return key
}

func unchanged(p *prompt.Prompt, d prompt.Draft) bool {
	if p.Title != d.Title || p.Description != d.Description ||
		p.Body != d.Body || p.Category != d.Category {
		return false
	}
	if len(p.Tags) != len(d.Tags) {
		return false
	}
	for i, tag := range p.Tags {
		if d.Tags[i] != tag {
			return false
		}
	}
	return true
}
