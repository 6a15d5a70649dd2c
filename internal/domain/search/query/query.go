package query

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/legalsearch/internal/domain"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/relevance"
)

// MaxLength is the maximum allowed query length in bytes after trimming.
const MaxLength = 4096

// Query is a validated free-text search query.
type Query struct {
	text  string
	terms []string
}

// New trims surrounding whitespace and validates the query.
// A blank query yields domain.ErrEmptyQuery.
func New(raw string) (Query, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Query{}, domain.ErrEmptyQuery
	}
	if len(text) > MaxLength {
		return Query{}, fmt.Errorf("%w: query too long (max %d bytes)", domain.ErrInvalidQuery, MaxLength)
	}
	return Query{text: text, terms: relevance.Terms(text)}, nil
}

// Text returns the trimmed query as the client sent it (case preserved).
func (q Query) Text() string { return q.text }

// Terms returns the lowercased whitespace-delimited terms in query order.
func (q Query) Terms() []string { return q.terms }
