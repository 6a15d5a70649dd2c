package search

import (
	"context"

	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
)

// DocumentLister reads the whole corpus in authoring order.
type DocumentLister interface {
	List(ctx context.Context) ([]domdoc.Document, error)
}

// Searcher ranks the corpus against a query.
type Searcher interface {
	Search(ctx context.Context, q query.Query) ([]result.Result, error)
}
