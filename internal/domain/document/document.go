package document

import (
	"fmt"
	"math"
	"regexp"

	"github.com/kailas-cloud/legalsearch/internal/domain"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 163840 // 160KB

// Document is a corpus record (immutable value object).
type Document struct {
	id             string
	title          string
	content        string
	summary        string
	relevanceScore float64
}

// New validates and creates a Document.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. Title and content are required.
// The authored relevance score must lie in [0, 1].
func New(id, title, content, summary string, relevanceScore float64) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("%w: document ID is required", domain.ErrInvalidDocument)
	}
	if len(id) > 256 {
		return Document{}, fmt.Errorf("%w: document ID too long (max 256)", domain.ErrInvalidDocument)
	}
	if !idRegex.MatchString(id) {
		return Document{}, fmt.Errorf(
			"%w: document ID %q must be alphanumeric with underscores and hyphens", domain.ErrInvalidDocument, id,
		)
	}
	if title == "" {
		return Document{}, fmt.Errorf("%w: document %q: title is required", domain.ErrInvalidDocument, id)
	}
	if content == "" {
		return Document{}, fmt.Errorf("%w: document %q: content is required", domain.ErrInvalidDocument, id)
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf(
			"%w: document %q: content too large (max %d bytes)", domain.ErrInvalidDocument, id, MaxContentSize,
		)
	}
	if math.IsNaN(relevanceScore) || relevanceScore < 0 || relevanceScore > 1 {
		return Document{}, fmt.Errorf(
			"%w: document %q: relevance score %v out of range [0, 1]", domain.ErrInvalidDocument, id, relevanceScore,
		)
	}

	return Document{
		id:             id,
		title:          title,
		content:        content,
		summary:        summary,
		relevanceScore: relevanceScore,
	}, nil
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the full document text.
func (d *Document) Content() string { return d.content }

// Summary returns the authored summary.
func (d *Document) Summary() string { return d.summary }

// RelevanceScore returns the static authored score. It is unrelated to per-query scoring.
func (d *Document) RelevanceScore() float64 { return d.relevanceScore }
