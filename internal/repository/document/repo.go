package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/legalsearch/internal/domain"
	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
)

// Repo is the write-once, in-memory document store. It is built at startup
// and only read afterwards, so concurrent reads need no locking.
type Repo struct {
	docs []domdoc.Document
	byID map[string]int
}

// New creates a store over docs, preserving their order. IDs must be unique.
func New(docs []domdoc.Document) (*Repo, error) {
	r := &Repo{
		docs: make([]domdoc.Document, len(docs)),
		byID: make(map[string]int, len(docs)),
	}
	copy(r.docs, docs)
	for i := range r.docs {
		id := r.docs[i].ID()
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateDocument, id)
		}
		r.byID[id] = i
	}
	return r, nil
}

// NewFromYAML builds a store from an authored YAML corpus.
func NewFromYAML(data []byte) (*Repo, error) {
	docs, err := parseCorpus(data)
	if err != nil {
		return nil, err
	}
	return New(docs)
}

// NewFromFile builds a store from a YAML corpus on disk.
func NewFromFile(path string) (*Repo, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return NewFromYAML(data)
}

// Builtin builds a store from the embedded legal corpus.
func Builtin() (*Repo, error) {
	return NewFromYAML(legalCorpus)
}

// List returns every document in authoring order.
func (r *Repo) List(_ context.Context) ([]domdoc.Document, error) {
	out := make([]domdoc.Document, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

// Get returns the document with the given ID or a *domain.DocumentNotFoundError.
func (r *Repo) Get(_ context.Context, id string) (domdoc.Document, error) {
	i, ok := r.byID[id]
	if !ok {
		return domdoc.Document{}, domain.NewDocumentNotFound(id)
	}
	return r.docs[i], nil
}

// Count returns the number of documents in the store.
func (r *Repo) Count(_ context.Context) (int, error) {
	return len(r.docs), nil
}
