package result

// Result is a single scored search hit. It lives only for one request.
type Result struct {
	id      string
	title   string
	summary string
	score   float64
	snippet string
}

// New creates a search result.
func New(id, title, summary string, score float64, snippet string) Result {
	return Result{id: id, title: title, summary: summary, score: score, snippet: snippet}
}

// ID returns the document identifier.
func (r *Result) ID() string { return r.id }

// Title returns the document title.
func (r *Result) Title() string { return r.title }

// Summary returns the document summary.
func (r *Result) Summary() string { return r.summary }

// Score returns the query-dependent relevance in [0, 1].
func (r *Result) Score() float64 { return r.score }

// Snippet returns the excerpt around the first matching term.
func (r *Result) Snippet() string { return r.snippet }
