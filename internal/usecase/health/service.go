package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the corpus is loaded and searchable.
	Healthy Status = "ok"
	// Degraded indicates the corpus is empty or unreadable.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status    Status
	Checks    map[string]CheckResult
	Documents int
}

// Service coordinates health checks.
type Service struct {
	corpus CorpusCounter
}

// New creates a Service.
func New(corpus CorpusCounter) *Service {
	return &Service{corpus: corpus}
}

// Check reports Healthy when at least one document is loaded.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 1)

	n, err := s.corpus.Count(ctx)
	if err != nil || n == 0 {
		checks["corpus"] = CheckError
		return Report{Status: Degraded, Checks: checks}
	}

	checks["corpus"] = CheckOK
	return Report{Status: Healthy, Checks: checks, Documents: n}
}
