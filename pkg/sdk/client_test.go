package legalsearch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/legalsearch/internal/usecase/health"
)

const smallCorpus = `documents:
  - id: a
    title: Alpha
    content: The lease was signed. Lease terms apply.
    summary: About leases.
    relevance_score: 0.5
  - id: b
    title: Beta
    content: Nothing to see.
    summary: Other.
    relevance_score: 0.4
`

func TestNew_BuiltinCorpus(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	docs, err := c.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != 10 {
		t.Fatalf("expected 10 documents, got %d", len(docs))
	}
	if docs[0].ID != "doc1" || docs[9].ID != "doc10" {
		t.Errorf("unexpected order: first %q, last %q", docs[0].ID, docs[9].ID)
	}

	h := c.Health(context.Background())
	if h.Status != "ok" || h.Documents != 10 || h.Checks["corpus"] != "ok" {
		t.Errorf("unexpected health: %+v", h)
	}
}

func TestSearch_Builtin(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := c.Search(context.Background(), "tax")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []struct {
		id    string
		score float64
	}{{"doc7", 1.0}, {"doc10", 0.578}, {"doc5", 0.458}}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for i, w := range want {
		if results[i].ID != w.id || results[i].Score != w.score {
			t.Errorf("result %d = %s/%v, want %s/%v", i, results[i].ID, results[i].Score, w.id, w.score)
		}
		if results[i].Snippet == "" {
			t.Errorf("result %d has empty snippet", i)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range []string{"", "   "} {
		_, err := c.Search(context.Background(), q)
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q): expected ErrEmptyQuery, got %v", q, err)
		}
		if !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("Search(%q): ErrEmptyQuery should unwrap to ErrInvalidQuery", q)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := c.Search(context.Background(), "xyzabc123nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", results)
	}
}

func TestDocument(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := c.Document(context.Background(), "doc1")
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if doc.Title != "Contract Law Fundamentals" || len(doc.Content) <= 200 {
		t.Errorf("unexpected document: %q (%d bytes)", doc.Title, len(doc.Content))
	}

	_, err = c.Document(context.Background(), "doc999")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestWithCorpus(t *testing.T) {
	c, err := New(WithCorpus([]byte(smallCorpus)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := c.Search(context.Background(), "LEASE")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestWithCorpusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(smallCorpus), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	c, err := New(WithCorpusFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	docs, err := c.Documents(context.Background())
	if err != nil || len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d (%v)", len(docs), err)
	}
}

func TestNew_InvalidCorpus(t *testing.T) {
	dup := smallCorpus + `  - id: a
    title: Again
    content: dup
    summary: dup
    relevance_score: 0.1
`
	tests := []struct {
		name string
		data string
		want error
	}{
		{"duplicate id", dup, ErrDuplicateDocument},
		{"bad score", strings.Replace(smallCorpus, "0.5", "1.5", 1), ErrInvalidDocument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(WithCorpus([]byte(tc.data)))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := New(WithCorpus([]byte("documents: [unclosed"))); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := New(WithCorpusFile(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Error("expected error for missing corpus file")
	}
}

func TestNew_InvalidSnippet(t *testing.T) {
	if _, err := New(WithSnippet(0, 10)); err == nil {
		t.Error("expected error for zero max length")
	}
	if _, err := New(WithSnippet(100, -1)); err == nil {
		t.Error("expected error for negative context")
	}
}

func TestWithSnippet_BoundsSnippets(t *testing.T) {
	c, err := New(WithSnippet(40, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := c.Search(context.Background(), "law")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, r := range results {
		if n := len([]rune(r.Snippet)); n > 40+6 {
			t.Errorf("%s: snippet too long (%d runes): %q", r.ID, n, r.Snippet)
		}
	}
}

func TestClientOptions(t *testing.T) {
	cfg := defaultConfig()
	if cfg.snippetMaxLength != 200 || cfg.snippetContextChars != 50 {
		t.Errorf("unexpected defaults: %d/%d", cfg.snippetMaxLength, cfg.snippetContextChars)
	}

	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	for _, o := range []Option{
		WithCorpusFile("x.yaml"),
		WithCorpus([]byte("documents: []")),
		WithSnippet(80, 20),
		WithLogger(logger),
		WithPrometheus(reg),
	} {
		o.apply(cfg)
	}
	if cfg.corpusPath != "" || string(cfg.corpus) != "documents: []" {
		t.Errorf("WithCorpus should win over an earlier WithCorpusFile: %q / %q", cfg.corpusPath, cfg.corpus)
	}
	if cfg.snippetMaxLength != 80 || cfg.snippetContextChars != 20 {
		t.Errorf("WithSnippet not applied: %d/%d", cfg.snippetMaxLength, cfg.snippetContextChars)
	}
	if cfg.logger != logger || cfg.metricsReg != reg {
		t.Error("logger or registerer not applied")
	}
}

func TestObserver_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := New(WithPrometheus(reg), WithLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	_, _ = c.Search(ctx, "contract")
	_, _ = c.Search(ctx, " ")
	_, _ = c.Document(ctx, "doc999")

	ops := c.obs.metrics.operations
	if got := testutil.ToFloat64(ops.WithLabelValues("search", "ok")); got != 1 {
		t.Errorf("search ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("search", "miss")); got != 1 {
		t.Errorf("search miss = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("document", "miss")); got != 1 {
		t.Errorf("document miss = %v, want 1", got)
	}
	if !strings.Contains(buf.String(), "op=search") {
		t.Errorf("expected search log line, got %q", buf.String())
	}
}

func TestObserver_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c1, err := New(WithPrometheus(reg))
	if err != nil {
		t.Fatalf("first client: %v", err)
	}
	c2, err := New(WithPrometheus(reg))
	if err != nil {
		t.Fatalf("second client must reuse collectors: %v", err)
	}
	if c1.obs.metrics.operations != c2.obs.metrics.operations {
		t.Error("expected shared collector")
	}
}

func TestRegisterOrReuse_IncompatibleType(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "legalsearch", Subsystem: "sdk", Name: "operations_total", Help: "Total SDK operations by type and status.",
	})
	if err := reg.Register(g); err != nil {
		t.Fatalf("register gauge: %v", err)
	}
	if _, err := newSDKMetrics(reg); err == nil {
		t.Fatal("expected error for conflicting collector")
	}
}

func TestObserver_NilSafe(t *testing.T) {
	var o *observer
	o.observe("search", time.Now(), errors.New("x"))
}

func TestServices_WithMocks(t *testing.T) {
	internal := errors.New("store down")
	doc, err := domdoc.New("m1", "Mock", "mock content", "s", 0.3)
	if err != nil {
		t.Fatalf("domdoc.New: %v", err)
	}

	var gotQuery string
	c := &Client{
		searchSvc: &mockSearchUC{searchFn: func(_ context.Context, q query.Query) ([]result.Result, error) {
			gotQuery = q.Text()
			return []result.Result{result.New("m1", "Mock", "s", 0.5, "snip")}, nil
		}},
		docSvc: &mockDocumentUC{
			getFn: func(_ context.Context, _ string) (domdoc.Document, error) { return domdoc.Document{}, internal },
			listFn: func(_ context.Context) ([]domdoc.Document, error) {
				return []domdoc.Document{doc}, nil
			},
		},
		healthSvc: &mockHealthUC{report: healthuc.Report{
			Status: healthuc.Degraded,
			Checks: map[string]healthuc.CheckResult{"corpus": healthuc.CheckError},
		}},
	}

	results, err := c.Search(context.Background(), "  Mock Query ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "Mock Query" {
		t.Errorf("query not trimmed: %q", gotQuery)
	}
	if len(results) != 1 || results[0].Snippet != "snip" || results[0].Score != 0.5 {
		t.Errorf("unexpected results: %+v", results)
	}

	if _, err := c.Document(context.Background(), "m1"); !errors.Is(err, internal) {
		t.Errorf("expected wrapped internal error, got %v", err)
	}

	docs, err := c.Documents(context.Background())
	if err != nil || len(docs) != 1 || docs[0].Content != "mock content" {
		t.Errorf("unexpected documents: %+v (%v)", docs, err)
	}

	if h := c.Health(context.Background()); h.Status != "degraded" || h.Checks["corpus"] != "error" {
		t.Errorf("unexpected health: %+v", h)
	}
}
