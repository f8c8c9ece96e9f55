// Package view derives the display list from the merged prompt
// collection. The pipeline is a pure function of its inputs: it filters
// by search text, then by category or favorites, then sorts, and never
// mutates the collection it was given.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Sort names the supported display orders.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortTitleAsc  Sort = "az"
	SortTitleDesc Sort = "za"
)

// ParseSort converts a string to a Sort. Empty defaults to newest.
func ParseSort(raw string) (Sort, error) {
	s := Sort(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortTitleAsc, SortTitleDesc:
		return s, nil
	}
	return "", fmt.Errorf("view: unknown sort order %q", raw)
}

// Selector picks which slice of the merged collection to show: all
// prompts, only favorites, or a single category.
type Selector string

const (
	SelectorAll       Selector = "All"
	SelectorFavorites Selector = "Favorites"
)

// CategorySelector narrows the view to one concrete category.
func CategorySelector(c prompt.Category) Selector {
	return Selector(c)
}

// ParseSelector accepts "all", "favorites", or a category name.
func ParseSelector(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "" || strings.EqualFold(trimmed, string(SelectorAll)):
		return SelectorAll, nil
	case strings.EqualFold(trimmed, string(SelectorFavorites)):
		return SelectorFavorites, nil
	}
	c, err := prompt.ParseCategory(trimmed)
	if err != nil {
		return "", err
	}
	return CategorySelector(c), nil
}

// Query bundles the ephemeral per-view filter and sort configuration.
// SinceMillis, when non-zero, keeps only custom prompts created at or
// after that instant; built-in prompts carry no creation time and are
// dropped.
type Query struct {
	Search      string
	Selector    Selector
	Sort        Sort
	SinceMillis int64
}

// Stats summarizes a derived view for display headers.
type Stats struct {
	Displayed int
	Total     int
}

// Apply runs the filter → sort pipeline and returns a fresh slice.
func Apply(items []*prompt.Prompt, q Query, favs favorites.Set) []*prompt.Prompt {
	out := make([]*prompt.Prompt, 0, len(items))

	query := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range items {
		if q.SinceMillis > 0 && (!p.ID.Custom() || p.ID.SortKey() < q.SinceMillis) {
			continue
		}
		if query != "" && !matches(p, query) {
			continue
		}
		switch q.Selector {
		case "", SelectorAll:
		case SelectorFavorites:
			if !favs.Has(p.ID) {
				continue
			}
		default:
			if p.Category != prompt.Category(q.Selector) {
				continue
			}
		}
		out = append(out, p)
	}

	sortPrompts(out, q.Sort)
	return out
}

// matches reports whether any searchable field contains the lowercased
// query as a substring.
func matches(p *prompt.Prompt, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Body), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortPrompts(items []*prompt.Prompt, order Sort) {
	switch order {
	case SortTitleAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return titleLess(items[i], items[j])
		})
	case SortTitleDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return titleLess(items[j], items[i])
		})
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ID.SortKey() < items[j].ID.SortKey()
		})
	default: // newest
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ID.SortKey() > items[j].ID.SortKey()
		})
	}
}

func titleLess(a, b *prompt.Prompt) bool {
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
