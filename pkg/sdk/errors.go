package legalsearch

import "github.com/kailas-cloud/legalsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrDocumentNotFound  = domain.ErrDocumentNotFound
	ErrInvalidQuery      = domain.ErrInvalidQuery
	ErrEmptyQuery        = domain.ErrEmptyQuery
	ErrInvalidDocument   = domain.ErrInvalidDocument
	ErrDuplicateDocument = domain.ErrDuplicateDocument
)
