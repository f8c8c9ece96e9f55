// Package template extracts and fills the bracketed placeholder tokens
// used in prompt bodies, e.g. "Analyze [Company Name] in [Sector]".
package template

import "strings"

// Extract scans body for [bracketed] placeholder tokens and returns the
// distinct inner texts in first-occurrence order. A token runs from an
// open bracket to the first close bracket on the same line; brackets with
// no terminator are literal text. Nesting is not supported.
func Extract(body string) []string {
	var names []string
	seen := make(map[string]struct{})
	for i := 0; i < len(body); {
		open := strings.IndexByte(body[i:], '[')
		if open < 0 {
			break
		}
		open += i
		rest := body[open+1:]
		closing := strings.IndexByte(rest, ']')
		if closing < 0 {
			break
		}
		if nl := strings.IndexByte(rest[:closing], '\n'); nl >= 0 {
			// The close bracket is on a later line; this open bracket is
			// literal. Resume after the line break.
			i = open + 1 + nl
			continue
		}
		name := rest[:closing]
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		i = open + 1 + closing + 1
	}
	return names
}

// Render substitutes supplied values into body. Every occurrence of
// [name] is replaced when values carries a non-empty value for name;
// tokens with absent or empty values are left intact so a partially
// filled template stays legible and re-editable.
func Render(body string, values map[string]string) string {
	if len(values) == 0 {
		return body
	}
	out := body
	for _, name := range Extract(body) {
		if v := values[name]; v != "" {
			out = strings.ReplaceAll(out, "["+name+"]", v)
		}
	}
	return out
}
