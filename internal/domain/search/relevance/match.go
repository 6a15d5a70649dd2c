package relevance

import "strings"

// Matches reports whether any query term occurs in content.
// Empty input on either side never matches.
func Matches(query, content string) bool {
	if query == "" || content == "" {
		return false
	}
	text := lower(content)
	for _, term := range Terms(query) {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
