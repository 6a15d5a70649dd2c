package relevance

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Ellipsis marks a truncated snippet edge.
const Ellipsis = "..."

// Snippet defaults.
const (
	DefaultMaxLength    = 200
	DefaultContextChars = 50
)

var defaultSnippeter = Snippeter{maxLength: DefaultMaxLength, contextChars: DefaultContextChars}

// Snippeter extracts a bounded excerpt of content around the first matching
// query term. Lengths and offsets are measured in runes.
type Snippeter struct {
	maxLength    int
	contextChars int
}

// NewSnippeter validates snippet sizes: maxLength > 0, contextChars >= 0.
func NewSnippeter(maxLength, contextChars int) (*Snippeter, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("snippet max length must be positive, got %d", maxLength)
	}
	if contextChars < 0 {
		return nil, fmt.Errorf("snippet context chars must not be negative, got %d", contextChars)
	}
	return &Snippeter{maxLength: maxLength, contextChars: contextChars}, nil
}

// Snippet extracts with the default sizes.
func Snippet(content, query string) string {
	return defaultSnippeter.Extract(content, query)
}

// MaxLength returns the configured snippet budget before ellipsis markers.
func (s *Snippeter) MaxLength() int { return s.maxLength }

// ContextChars returns the configured context on each side of the match.
func (s *Snippeter) ContextChars() int { return s.contextChars }

// Extract returns a snippet of content for query.
//
// The anchor is the first term, in query order, found anywhere in the
// lowercased content. Without an anchor the leading maxLength runes are
// returned. With one, contextChars runes on each side of the matched term
// are kept, and windows still longer than maxLength are re-centered.
// The result never exceeds maxLength plus two ellipsis markers.
func (s *Snippeter) Extract(content, query string) string {
	if content == "" {
		return ""
	}
	text := []rune(content)
	if query == "" {
		return string(text[:min(len(text), s.maxLength)])
	}

	pos, term := anchor(lower(content), Terms(query))
	if pos < 0 {
		if len(text) <= s.maxLength {
			return content
		}
		return string(text[:s.maxLength]) + Ellipsis
	}

	start := max(0, pos-s.contextChars)
	end := min(len(text), pos+utf8.RuneCountInString(term)+s.contextChars)

	snippet := wrap(string(text[start:end]), start > 0, end < len(text))

	window := []rune(snippet)
	if len(window) <= s.maxLength {
		return snippet
	}

	// Re-center inside the extracted window. The match offset ignores a
	// leading marker and the right edge is compared with the content length,
	// not the window length. Clients depend on both.
	inWindow := pos - start
	subStart := max(0, inWindow-s.maxLength/2)
	subEnd := min(len(window), subStart+s.maxLength)
	return wrap(string(window[subStart:subEnd]), subStart > 0, subEnd < len(text))
}

// anchor returns the rune offset and text of the first term present in text.
func anchor(text string, terms []string) (int, string) {
	for _, term := range terms {
		if i := strings.Index(text, term); i >= 0 {
			return utf8.RuneCountInString(text[:i]), term
		}
	}
	return -1, ""
}

func wrap(s string, head, tail bool) string {
	if head {
		s = Ellipsis + s
	}
	if tail {
		s += Ellipsis
	}
	return s
}
