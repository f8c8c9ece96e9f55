package prompt

// Prompt is a titled text template with metadata. Built-in prompts are
// read-only; custom prompts are user-authored, mutable, and carry the
// version history of their prior edits.
type Prompt struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"ratingCount"`
	Versions    []Version `json:"versions,omitempty"`
}

// Custom reports whether the prompt is user-authored and therefore mutable.
func (p *Prompt) Custom() bool {
	return p.ID.Custom()
}

// Clone returns a deep copy so collection snapshots never alias live state.
func (p *Prompt) Clone() *Prompt {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	if p.Versions != nil {
		cp.Versions = make([]Version, len(p.Versions))
		for i, v := range p.Versions {
			cp.Versions[i] = v.clone()
		}
	}
	return &cp
}
