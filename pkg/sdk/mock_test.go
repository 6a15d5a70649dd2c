package legalsearch

import (
	"context"

	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/query"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/legalsearch/internal/usecase/health"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, q query.Query) ([]result.Result, error)
}

func (m *mockSearchUC) Search(ctx context.Context, q query.Query) ([]result.Result, error) {
	return m.searchFn(ctx, q)
}

// --- documentUseCase mock ---

type mockDocumentUC struct {
	getFn  func(ctx context.Context, id string) (domdoc.Document, error)
	listFn func(ctx context.Context) ([]domdoc.Document, error)
}

func (m *mockDocumentUC) Get(ctx context.Context, id string) (domdoc.Document, error) {
	return m.getFn(ctx, id)
}

func (m *mockDocumentUC) List(ctx context.Context) ([]domdoc.Document, error) {
	return m.listFn(ctx)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }
