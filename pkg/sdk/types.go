package legalsearch

import (
	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
)

// Document is a corpus record.
type Document struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Summary        string  `json:"summary"`
	RelevanceScore float64 `json:"relevance_score"` // authored, not query-dependent
}

// SearchResult is one ranked hit.
type SearchResult struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Score   float64 `json:"relevance_score"` // query-dependent, in [0, 1]
	Snippet string  `json:"snippet"`
}

func documentFromDomain(d *domdoc.Document) Document {
	return Document{
		ID:             d.ID(),
		Title:          d.Title(),
		Content:        d.Content(),
		Summary:        d.Summary(),
		RelevanceScore: d.RelevanceScore(),
	}
}

func resultFromDomain(r *result.Result) SearchResult {
	return SearchResult{
		ID:      r.ID(),
		Title:   r.Title(),
		Summary: r.Summary(),
		Score:   r.Score(),
		Snippet: r.Snippet(),
	}
}
