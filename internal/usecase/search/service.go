package search

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/relevance"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
)

// Service ranks corpus documents by substring relevance.
type Service struct {
	docs      DocumentLister
	snippeter *relevance.Snippeter
}

// New creates a search service. A nil snippeter uses the default sizes.
func New(docs DocumentLister, snippeter *relevance.Snippeter) *Service {
	if snippeter == nil {
		snippeter, _ = relevance.NewSnippeter(relevance.DefaultMaxLength, relevance.DefaultContextChars)
	}
	return &Service{docs: docs, snippeter: snippeter}
}

// Search returns every document with at least one query term in its content,
// ordered by descending score. Ties keep corpus order. No matches yields an
// empty, non-nil slice.
func (s *Service) Search(ctx context.Context, q query.Query) ([]result.Result, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	text := q.Text()
	results := make([]result.Result, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		if !relevance.Matches(text, d.Content()) {
			continue
		}
		results = append(results, result.New(
			d.ID(), d.Title(), d.Summary(),
			relevance.Score(text, d.Content()),
			s.snippeter.Extract(d.Content(), text),
		))
	}

	slices.SortStableFunc(results, func(a, b result.Result) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return results, nil
}
