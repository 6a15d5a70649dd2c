package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidQuery signals a query that cannot be searched.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEmptyQuery signals a query that is blank after trimming.
	ErrEmptyQuery = fmt.Errorf("%w: query is empty", ErrInvalidQuery)
	// ErrInvalidDocument signals a corpus record that fails validation.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrDuplicateDocument signals two corpus records sharing an ID.
	ErrDuplicateDocument = errors.New("duplicate document")
)

// DocumentNotFoundError wraps ErrDocumentNotFound with the requested ID.
type DocumentNotFoundError struct {
	ID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDocumentNotFound.Error(), e.ID)
}

func (e *DocumentNotFoundError) Unwrap() error { return ErrDocumentNotFound }

// NewDocumentNotFound creates a not-found error for the given ID.
func NewDocumentNotFound(id string) error {
	return &DocumentNotFoundError{ID: id}
}
