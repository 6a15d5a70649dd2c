// Package relevance implements query matching, relevance scoring and snippet
// extraction over plain document text.
//
// Matching is lowercase substring search: a query term matches anywhere it
// occurs, including inside longer words ("contract" matches "contracting").
package relevance

import (
	"strings"
	"unicode"
)

// Terms lowercases the query and splits it on whitespace. Order is preserved.
func Terms(query string) []string {
	return strings.Fields(lower(query))
}

// lower maps every rune to lowercase one-to-one, so rune offsets in the
// result line up with rune offsets in the input.
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}
