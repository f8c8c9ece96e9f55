package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowEmpty(t *testing.T) {
	if _, _, err := ParseWindow(""); err == nil {
		t.Fatalf("expected error for empty window")
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24+2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowSingleUnit(t *testing.T) {
	dur, label, err := ParseWindow("3 days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 3*24*time.Hour {
		t.Fatalf("expected 72h, got %v", dur)
	}
	if label != "3d" {
		t.Fatalf("expected label 3d, got %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
}
