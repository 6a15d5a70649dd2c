package health

import "context"

// CorpusCounter reports how many documents are loaded.
type CorpusCounter interface {
	Count(ctx context.Context) (int, error)
}
