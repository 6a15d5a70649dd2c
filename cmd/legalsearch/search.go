package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	legalsearch "github.com/kailas-cloud/legalsearch/pkg/sdk"
)

func newClient(corpusPath string) (*legalsearch.Client, error) {
	client, err := legalsearch.New(legalsearch.WithCorpusFile(corpusPath))
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func runSearch(ctx context.Context, w io.Writer, args []string, corpusPath string, limit int, jsonOut bool) error {
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", limit)
	}
	client, err := newClient(corpusPath)
	if err != nil {
		return err
	}

	q := strings.Join(args, " ")
	results, err := client.Search(ctx, q)
	if errors.Is(err, legalsearch.ErrEmptyQuery) {
		return errors.New("query cannot be empty")
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if jsonOut {
		return writeJSON(w, map[string]any{
			"query":   strings.TrimSpace(q),
			"results": results,
			"count":   len(results),
		})
	}
	printResults(w, q, results)
	return nil
}

func runShow(ctx context.Context, w io.Writer, id, corpusPath string, jsonOut bool) error {
	client, err := newClient(corpusPath)
	if err != nil {
		return err
	}

	doc, err := client.Document(ctx, id)
	if errors.Is(err, legalsearch.ErrDocumentNotFound) {
		return fmt.Errorf("document with ID %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	if jsonOut {
		return writeJSON(w, doc)
	}
	printDocument(w, doc)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
