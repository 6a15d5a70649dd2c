package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/legalsearch/internal/domain"
	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/legalsearch/internal/logger"
	"github.com/kailas-cloud/legalsearch/internal/metrics"
	healthuc "github.com/kailas-cloud/legalsearch/internal/usecase/health"
)

// DefaultMaxBodyBytes caps the generate request body.
const DefaultMaxBodyBytes int64 = 1 << 20

// Client-facing messages.
const (
	msgBodyRequired     = "Request body is required"
	msgInvalidFormat    = "Invalid request format"
	msgQueryRequired    = "Query parameter is required and must be a non-empty string"
	msgQueryEmpty       = "Query parameter cannot be empty"
	msgBodyTooLarge     = "Request body too large"
	msgNotFound         = "Endpoint not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "Internal server error"
	msgTooManyRequests  = "Too many requests"
)

// Searcher ranks the corpus against a query.
type Searcher interface {
	Search(ctx context.Context, q query.Query) ([]result.Result, error)
}

// DocumentReader looks up a single document.
type DocumentReader interface {
	Get(ctx context.Context, id string) (domdoc.Document, error)
}

// HealthChecker reports service health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle an error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements ServerInterface.
type Server struct {
	search        Searcher
	documents     DocumentReader
	health        HealthChecker
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(search Searcher, documents DocumentReader, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		search:       search,
		documents:    documents,
		health:       health,
		logger:       logger,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	s.errorHandlers = []errorHandler{
		requestErrorHandler,
		documentNotFoundHandler,
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, msgQueryEmpty),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest,
			fmt.Sprintf("Query parameter must be at most %d characters", query.MaxLength)),
	}
	return s
}

// WithMaxBodyBytes overrides the request body cap.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// Generate handles POST /generate.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseGenerate(w, r)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("invalid").Inc()
		s.handleError(w, r, err)
		return
	}

	results, err := s.search.Search(r.Context(), q)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	items := make([]searchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToResponse(&results[i])
	}
	writeJSON(w, http.StatusOK, generateResponse{
		Query:   q.Text(),
		Results: items,
		Count:   len(items),
	})
}

// GetDocument handles GET /documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := s.documents.Get(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToResponse(&doc))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status)})
}

// Preflight answers OPTIONS on every API route.
func (s *Server) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// parseGenerate reads and validates {"query": string}.
// A JSON body that is null, false, 0, "", [] or {} counts as absent.
func (s *Server) parseGenerate(w http.ResponseWriter, r *http.Request) (query.Query, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return query.Query{}, &requestError{status: http.StatusRequestEntityTooLarge, msg: msgBodyTooLarge}
		}
		return query.Query{}, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return query.Query{}, errBodyRequired
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return query.Query{}, errInvalidFormat
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return query.Query{}, errInvalidFormat
	}

	if isEmptyJSON(payload) {
		return query.Query{}, errBodyRequired
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return query.Query{}, errInvalidFormat
	}
	raw, ok := obj["query"].(string)
	if !ok || raw == "" {
		return query.Query{}, errQueryRequired
	}

	q, err := query.New(raw)
	if err != nil {
		return query.Query{}, fmt.Errorf("parse query: %w", err)
	}
	return q, nil
}

func isEmptyJSON(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// requestError is a client input error with a fixed message.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

var (
	errBodyRequired  = &requestError{status: http.StatusBadRequest, msg: msgBodyRequired}
	errInvalidFormat = &requestError{status: http.StatusBadRequest, msg: msgInvalidFormat}
	errQueryRequired = &requestError{status: http.StatusBadRequest, msg: msgQueryRequired}
)

func requestErrorHandler(w http.ResponseWriter, err error) bool {
	var re *requestError
	if !errors.As(err, &re) {
		return false
	}
	writeError(w, re.status, re.msg)
	return true
}

func documentNotFoundHandler(w http.ResponseWriter, err error) bool {
	var nf *domain.DocumentNotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("Document with ID %s not found", nf.ID))
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, msg string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			logpkg.FromContext(r.Context()).Debug("request rejected", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error",
		zap.String("request_id", requestID(r)),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
