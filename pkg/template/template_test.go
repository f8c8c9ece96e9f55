package template

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "none",
			body: "no placeholders here",
			want: nil,
		},
		{
			name: "single",
			body: "Hello [Name]",
			want: []string{"Name"},
		},
		{
			name: "duplicates collapse in first occurrence order",
			body: "Analyze [Company] in [Sector] for [Company]",
			want: []string{"Company", "Sector"},
		},
		{
			name: "unbalanced open is literal",
			body: "a [dangling and nothing else",
			want: nil,
		},
		{
			name: "close before open is literal",
			body: "we] use [Ticker] sometimes",
			want: []string{"Ticker"},
		},
		{
			name: "token does not span lines",
			body: "broken [start\nend] but [OK] survives",
			want: []string{"OK"},
		},
		{
			name: "spaces inside token",
			body: "report on [Company Name]",
			want: []string{"Company Name"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestRenderIdentityWithoutValues(t *testing.T) {
	body := "Hello [Name]"
	if got := Render(body, nil); got != body {
		t.Fatalf("Render with no values changed body: %q", got)
	}
	if got := Render(body, map[string]string{"Name": ""}); got != body {
		t.Fatalf("Render with empty value changed body: %q", got)
	}
}

func TestRenderSubstitutes(t *testing.T) {
	if got := Render("Hello [Name]", map[string]string{"Name": "Ada"}); got != "Hello Ada" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderReplacesAllOccurrences(t *testing.T) {
	if got := Render("[X] and [X]", map[string]string{"X": "Y"}); got != "Y and Y" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderPartialFill(t *testing.T) {
	body := "[A] then [B]"
	got := Render(body, map[string]string{"A": "first"})
	if got != "first then [B]" {
		t.Fatalf("got %q", got)
	}
}
