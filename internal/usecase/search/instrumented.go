package search

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/legalsearch/internal/domain"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/legalsearch/internal/logger"
	"github.com/kailas-cloud/legalsearch/internal/metrics"
)

// InstrumentedSearcher wraps a Searcher with search metrics and debug logging.
type InstrumentedSearcher struct {
	inner Searcher
}

// NewInstrumentedSearcher wraps inner. Call metrics.RegisterSearchMetrics to export the series.
func NewInstrumentedSearcher(inner Searcher) *InstrumentedSearcher {
	return &InstrumentedSearcher{inner: inner}
}

// Search delegates to the inner searcher and records outcome, latency and hit count.
func (s *InstrumentedSearcher) Search(ctx context.Context, q query.Query) ([]result.Result, error) {
	start := time.Now()
	results, err := s.inner.Search(ctx, q)
	duration := time.Since(start)

	log := logpkg.FromContext(ctx)
	if err != nil {
		status := "error"
		if errors.Is(err, domain.ErrInvalidQuery) {
			status = "invalid"
		}
		metrics.SearchRequestsTotal.WithLabelValues(status).Inc()
		log.Warn("search failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(duration.Seconds())
	metrics.SearchResults.Observe(float64(len(results)))

	log.Debug("search completed",
		zap.Int("terms", len(q.Terms())),
		zap.Int("results", len(results)),
		zap.Duration("duration", duration),
	)
	return results, nil
}
