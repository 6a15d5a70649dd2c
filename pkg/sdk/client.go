package legalsearch

import (
	"context"
	"fmt"
	"time"

	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/relevance"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
	documentrepo "github.com/kailas-cloud/legalsearch/internal/repository/document"
	documentuc "github.com/kailas-cloud/legalsearch/internal/usecase/document"
	healthuc "github.com/kailas-cloud/legalsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/legalsearch/internal/usecase/search"
)

// Internal interfaces, swapped for mocks in tests.
type searchUseCase interface {
	Search(ctx context.Context, q query.Query) ([]result.Result, error)
}

type documentUseCase interface {
	Get(ctx context.Context, id string) (domdoc.Document, error)
	List(ctx context.Context) ([]domdoc.Document, error)
}

// Client is the legalsearch SDK entry point. It is safe for concurrent use.
type Client struct {
	searchSvc searchUseCase
	docSvc    documentUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New loads the corpus and creates a Client.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	snippeter, err := relevance.NewSnippeter(cfg.snippetMaxLength, cfg.snippetContextChars)
	if err != nil {
		return nil, fmt.Errorf("legalsearch: %w", err)
	}

	repo, err := loadCorpus(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		searchSvc: searchuc.New(repo, snippeter),
		docSvc:    documentuc.New(repo),
		healthSvc: healthuc.New(repo),
		obs:       obs,
	}, nil
}

func loadCorpus(cfg *clientConfig) (*documentrepo.Repo, error) {
	var (
		repo *documentrepo.Repo
		err  error
	)
	switch {
	case cfg.corpus != nil:
		repo, err = documentrepo.NewFromYAML(cfg.corpus)
	case cfg.corpusPath != "":
		repo, err = documentrepo.NewFromFile(cfg.corpusPath)
	default:
		repo, err = documentrepo.Builtin()
	}
	if err != nil {
		return nil, fmt.Errorf("legalsearch: load corpus: %w", err)
	}
	return repo, nil
}

// Search ranks the corpus against query. Surrounding whitespace is ignored.
// A blank query returns ErrEmptyQuery. No matches yields an empty slice.
func (c *Client) Search(ctx context.Context, q string) (_ []SearchResult, err error) {
	start := time.Now()
	var n int
	defer func() { c.obs.observe("search", start, err, "results", n) }()

	parsed, err := query.New(q)
	if err != nil {
		return nil, fmt.Errorf("legalsearch: %w", err)
	}

	results, err := c.searchSvc.Search(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("legalsearch: search: %w", err)
	}

	out := make([]SearchResult, len(results))
	for i := range results {
		out[i] = resultFromDomain(&results[i])
	}
	n = len(out)
	return out, nil
}

// Document returns the document with the exact id, or ErrDocumentNotFound.
func (c *Client) Document(ctx context.Context, id string) (_ Document, err error) {
	start := time.Now()
	defer func() { c.obs.observe("document", start, err, "id", id) }()

	doc, err := c.docSvc.Get(ctx, id)
	if err != nil {
		return Document{}, fmt.Errorf("legalsearch: %w", err)
	}
	return documentFromDomain(&doc), nil
}

// Documents returns the whole corpus in authoring order.
func (c *Client) Documents(ctx context.Context) (_ []Document, err error) {
	start := time.Now()
	defer func() { c.obs.observe("documents", start, err) }()

	docs, err := c.docSvc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("legalsearch: %w", err)
	}
	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = documentFromDomain(&docs[i])
	}
	return out, nil
}
