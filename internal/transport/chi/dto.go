package chi

import (
	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type generateResponse struct {
	Query   string             `json:"query"`
	Results []searchResultItem `json:"results"`
	Count   int                `json:"count"`
}

type searchResultItem struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Summary        string  `json:"summary"`
	RelevanceScore float64 `json:"relevance_score"`
	Snippet        string  `json:"snippet"`
}

type documentResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Summary        string  `json:"summary"`
	RelevanceScore float64 `json:"relevance_score"`
}

func searchResultToResponse(r *result.Result) searchResultItem {
	return searchResultItem{
		ID:             r.ID(),
		Title:          r.Title(),
		Summary:        r.Summary(),
		RelevanceScore: r.Score(),
		Snippet:        r.Snippet(),
	}
}

func documentToResponse(d *domdoc.Document) documentResponse {
	return documentResponse{
		ID:             d.ID(),
		Title:          d.Title(),
		Content:        d.Content(),
		Summary:        d.Summary(),
		RelevanceScore: d.RelevanceScore(),
	}
}
