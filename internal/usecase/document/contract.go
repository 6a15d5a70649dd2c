package document

import (
	"context"

	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
)

// Repository defines the read-only storage contract for documents.
type Repository interface {
	Get(ctx context.Context, id string) (domdoc.Document, error)
	List(ctx context.Context) ([]domdoc.Document, error)
}
