package favorites

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

type failingSaver struct{ err error }

func (f *failingSaver) SaveFavorites(Set) error { return f.err }

func TestToggle(t *testing.T) {
	tr := NewTracker(nil, nil)
	id := prompt.CustomID(42)

	fav, err := tr.Toggle(id)
	if err != nil || !fav {
		t.Fatalf("first toggle = %v, %v", fav, err)
	}
	if !tr.IsFavorite(id) {
		t.Fatalf("expected membership after toggle")
	}

	fav, err = tr.Toggle(id)
	if err != nil || fav {
		t.Fatalf("second toggle = %v, %v", fav, err)
	}
	if tr.IsFavorite(id) {
		t.Fatalf("expected removal after second toggle")
	}
}

func TestToggleSaveFailureKeepsMemory(t *testing.T) {
	saver := &failingSaver{err: errors.New("io")}
	tr := NewTracker(nil, saver)
	id := prompt.StaticID(3)

	fav, err := tr.Toggle(id)
	if err == nil {
		t.Fatalf("expected persistence warning")
	}
	if !fav || !tr.IsFavorite(id) {
		t.Fatalf("failed save must not roll back the toggle")
	}
}

func TestRateRunningAverage(t *testing.T) {
	tr := NewTracker(nil, nil)
	p := &prompt.Prompt{ID: prompt.CustomID(7), Rating: 4.0, RatingCount: 1}

	if err := tr.Rate(p, 5); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if math.Abs(p.Rating-4.5) > 1e-9 || p.RatingCount != 2 {
		t.Fatalf("got %v/%d, want 4.5/2", p.Rating, p.RatingCount)
	}
}

func TestRateOncePerSession(t *testing.T) {
	tr := NewTracker(nil, nil)
	p := &prompt.Prompt{ID: prompt.CustomID(7)}

	if err := tr.Rate(p, 4); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := tr.Rate(p, 1); !errors.Is(err, ErrAlreadyRated) {
		t.Fatalf("expected ErrAlreadyRated, got %v", err)
	}
	if p.Rating != 4 || p.RatingCount != 1 {
		t.Fatalf("rejected rating still mutated the prompt: %v/%d", p.Rating, p.RatingCount)
	}
}

func TestRateStaticPromptRejected(t *testing.T) {
	tr := NewTracker(nil, nil)
	p := &prompt.Prompt{ID: prompt.StaticID(1), Rating: 4.8, RatingCount: 124}

	if err := tr.Rate(p, 5); !errors.Is(err, prompt.ErrImmutable) {
		t.Fatalf("expected ErrImmutable, got %v", err)
	}
	if p.Rating != 4.8 || p.RatingCount != 124 {
		t.Fatalf("static prompt mutated: %v/%d", p.Rating, p.RatingCount)
	}
}

func TestRateScoreRange(t *testing.T) {
	tr := NewTracker(nil, nil)
	p := &prompt.Prompt{ID: prompt.CustomID(7)}
	for _, score := range []int{0, 6, -1} {
		if err := tr.Rate(p, score); err == nil {
			t.Fatalf("score %d accepted", score)
		}
	}
}

func TestSetJSONRoundTrip(t *testing.T) {
	set := Set{
		prompt.StaticID(2):    {},
		prompt.CustomID(9999): {},
	}
	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Set
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || !back.Has(prompt.StaticID(2)) || !back.Has(prompt.CustomID(9999)) {
		t.Fatalf("round trip lost members: %v", back)
	}
}
