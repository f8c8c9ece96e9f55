package catalog

import (
	"testing"

	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

func TestBuiltinIdentities(t *testing.T) {
	prompts := Builtin()
	if len(prompts) == 0 {
		t.Fatalf("catalog is empty")
	}
	seen := make(map[prompt.ID]struct{}, len(prompts))
	for i, p := range prompts {
		if p.ID.Custom() {
			t.Fatalf("catalog prompt %q has a custom identity", p.Title)
		}
		if p.ID.SortKey() != int64(i+1) {
			t.Fatalf("catalog prompt %q out of sequence: %s", p.Title, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			t.Fatalf("duplicate identity %s", p.ID)
		}
		seen[p.ID] = struct{}{}
		if d := (prompt.Draft{Title: p.Title, Description: p.Description, Body: p.Body, Category: p.Category}); d.Validate() != nil {
			t.Fatalf("catalog prompt %q has empty required fields", p.Title)
		}
	}
}

func TestBuiltinReturnsFreshCopies(t *testing.T) {
	first := Builtin()
	first[0].Title = "clobbered"
	if Builtin()[0].Title == "clobbered" {
		t.Fatalf("catalog shares state across calls")
	}
}

func TestStarterByTitle(t *testing.T) {
	d, ok := StarterByTitle("SWOT Analysis")
	if !ok {
		t.Fatalf("expected starter")
	}
	if d.Validate() != nil {
		t.Fatalf("starter draft invalid")
	}
	if _, ok := StarterByTitle("nope"); ok {
		t.Fatalf("unexpected starter")
	}
}
