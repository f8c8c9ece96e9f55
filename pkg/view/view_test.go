package view

import (
	"testing"

	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

func fixture() []*prompt.Prompt {
	return []*prompt.Prompt{
		{
			ID:          prompt.CustomID(2000),
			Title:       "Banana",
			Description: "yellow fruit",
			Body:        "peel the [Fruit]",
			Category:    prompt.CategoryValuation,
			Tags:        []string{"fruit"},
		},
		{
			ID:          prompt.StaticID(1),
			Title:       "Apple",
			Description: "crisp",
			Body:        "slice it",
			Category:    prompt.CategoryWriting,
			Tags:        []string{"orchard"},
		},
		{
			ID:          prompt.StaticID(2),
			Title:       "Cherry",
			Description: "small and red",
			Body:        "pit it",
			Category:    prompt.CategoryValuation,
			Tags:        []string{"stone-fruit"},
		},
	}
}

func titles(items []*prompt.Prompt) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func equal(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSortByTitle(t *testing.T) {
	got := Apply(fixture(), Query{Sort: SortTitleAsc}, nil)
	if !equal(titles(got), []string{"Apple", "Banana", "Cherry"}) {
		t.Fatalf("az order: %v", titles(got))
	}

	got = Apply(fixture(), Query{Sort: SortTitleDesc}, nil)
	if !equal(titles(got), []string{"Cherry", "Banana", "Apple"}) {
		t.Fatalf("za order: %v", titles(got))
	}
}

func TestSortByRecencyAcrossOrigins(t *testing.T) {
	// Custom identities (creation millis) always outrank static catalog
	// sequence numbers in the shared numeric domain.
	got := Apply(fixture(), Query{Sort: SortNewest}, nil)
	if !equal(titles(got), []string{"Banana", "Cherry", "Apple"}) {
		t.Fatalf("newest order: %v", titles(got))
	}

	got = Apply(fixture(), Query{Sort: SortOldest}, nil)
	if !equal(titles(got), []string{"Apple", "Cherry", "Banana"}) {
		t.Fatalf("oldest order: %v", titles(got))
	}
}

func TestSearchMatchesAnyField(t *testing.T) {
	got := Apply(fixture(), Query{Search: "an", Sort: SortTitleAsc}, nil)
	if !equal(titles(got), []string{"Banana"}) {
		t.Fatalf("search 'an': %v", titles(got))
	}

	// Case-insensitive, and every field is searched.
	for query, want := range map[string]string{
		"CRISP":       "Apple", // description
		"stone-fruit": "Cherry", // tag
		"[fruit]":     "Banana", // body
	} {
		got := Apply(fixture(), Query{Search: query}, nil)
		if len(got) != 1 || got[0].Title != want {
			t.Fatalf("search %q: %v", query, titles(got))
		}
	}
}

func TestCategorySelector(t *testing.T) {
	got := Apply(fixture(), Query{
		Selector: CategorySelector(prompt.CategoryValuation),
		Sort:     SortTitleAsc,
	}, nil)
	if !equal(titles(got), []string{"Banana", "Cherry"}) {
		t.Fatalf("category filter: %v", titles(got))
	}
}

func TestFavoritesSelector(t *testing.T) {
	favs := favorites.Set{prompt.StaticID(2): {}}
	got := Apply(fixture(), Query{Selector: SelectorFavorites}, favs)
	if !equal(titles(got), []string{"Cherry"}) {
		t.Fatalf("favorites filter: %v", titles(got))
	}

	// Favorites beats category: membership is the only criterion.
	got = Apply(fixture(), Query{Selector: SelectorFavorites, Search: "pit"}, favs)
	if !equal(titles(got), []string{"Cherry"}) {
		t.Fatalf("favorites + search: %v", titles(got))
	}

	// Empty favorites yields an empty list regardless of search text.
	got = Apply(fixture(), Query{Selector: SelectorFavorites, Search: "a"}, nil)
	if len(got) != 0 {
		t.Fatalf("empty favorites still produced %v", titles(got))
	}
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	in := fixture()
	first := in[0]
	_ = Apply(in, Query{Sort: SortTitleAsc}, nil)
	if in[0] != first {
		t.Fatalf("pipeline reordered its input slice")
	}
}

func TestParseSelector(t *testing.T) {
	if s, err := ParseSelector("favorites"); err != nil || s != SelectorFavorites {
		t.Fatalf("favorites: %v %v", s, err)
	}
	if s, err := ParseSelector(""); err != nil || s != SelectorAll {
		t.Fatalf("empty: %v %v", s, err)
	}
	if s, err := ParseSelector("valuation"); err != nil || s != CategorySelector(prompt.CategoryValuation) {
		t.Fatalf("category: %v %v", s, err)
	}
	if _, err := ParseSelector("nonsense"); err == nil {
		t.Fatalf("expected error for unknown selector")
	}
}

func TestParseSort(t *testing.T) {
	if s, err := ParseSort(""); err != nil || s != SortNewest {
		t.Fatalf("default: %v %v", s, err)
	}
	if _, err := ParseSort("sideways"); err == nil {
		t.Fatalf("expected error for unknown sort")
	}
}

func TestSinceKeepsRecentCustomOnly(t *testing.T) {
	items := append(fixture(), &prompt.Prompt{
		ID:       prompt.CustomID(500),
		Title:    "Old Custom",
		Category: prompt.CategoryValuation,
	})

	got := Apply(items, Query{SinceMillis: 1000}, nil)
	if !equal(titles(got), []string{"Banana"}) {
		t.Fatalf("since filter got %v, want [Banana]", titles(got))
	}
}
