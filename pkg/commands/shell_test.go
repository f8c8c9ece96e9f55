package commands

import (
	"reflect"
	"testing"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`get`, []string{"get"}},
		{`add -t "DCF Walkthrough" -c Valuation`, []string{"add", "-t", "DCF Walkthrough", "-c", "Valuation"}},
		{`run 3 --var 'Company=ACME Corp'`, []string{"run", "3", "--var", "Company=ACME Corp"}},
		{`add -t ""`, []string{"add", "-t", ""}},
		{`  get   --sort az  `, []string{"get", "--sort", "az"}},
		{`edit custom-1 -b "a [Var] body"`, []string{"edit", "custom-1", "-b", "a [Var] body"}},
	}
	for _, tt := range tests {
		got, err := splitWords(tt.line)
		if err != nil {
			t.Fatalf("splitWords(%q): %v", tt.line, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitWords(%q) = %#v, want %#v", tt.line, got, tt.want)
		}
	}
}

func TestSplitWordsUnterminatedQuote(t *testing.T) {
	if _, err := splitWords(`add -t "unterminated`); err == nil {
		t.Fatal("expected an error for an unterminated quote")
	}
}
