package legalsearch

import (
	"context"

	healthuc "github.com/kailas-cloud/legalsearch/internal/usecase/health"
)

// HealthStatus represents the aggregated health.
type HealthStatus struct {
	Status    string            // "ok" or "degraded"
	Checks    map[string]string // component → "ok"/"error"
	Documents int
}

// Health reports whether the corpus is loaded.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:    string(report.Status),
		Checks:    checks,
		Documents: report.Documents,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
