package prompt

import "time"

// Version is an immutable record of a custom prompt's field values,
// captured at the moment an edit overwrites them.
type Version struct {
	Created     Timestamp `json:"created"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
}

// Snapshot captures the prompt's current editable fields as a version.
func Snapshot(p *Prompt, at time.Time) Version {
	return Version{
		Created:     Timestamp{Time: at},
		Title:       p.Title,
		Description: p.Description,
		Body:        p.Body,
		Category:    p.Category,
		Tags:        append([]string(nil), p.Tags...),
	}
}

// Draft rebuilds an editable draft from the version's fields so a prior
// state can be re-applied through the normal update path.
func (v Version) Draft() Draft {
	return Draft{
		Title:       v.Title,
		Description: v.Description,
		Body:        v.Body,
		Category:    v.Category,
		Tags:        append([]string(nil), v.Tags...),
	}
}

func (v Version) clone() Version {
	cp := v
	if v.Tags != nil {
		cp.Tags = append([]string(nil), v.Tags...)
	}
	return cp
}
