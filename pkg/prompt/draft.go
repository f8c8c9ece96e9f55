package prompt

import "strings"

// Draft carries the user-editable fields submitted on create or update.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate checks the required fields. Tags may be empty; title,
// description, and body must contain something other than whitespace.
func (d Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return &ValidationError{Field: "title"}
	case strings.TrimSpace(d.Description) == "":
		return &ValidationError{Field: "description"}
	case strings.TrimSpace(d.Body) == "":
		return &ValidationError{Field: "body"}
	}
	return nil
}

// NormalizeTags lowercases, trims, and de-duplicates tags while keeping
// first-occurrence order. Empty entries are dropped.
func NormalizeTags(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SplitTags parses a comma-separated tag list from CLI input.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(s, ","))
}
