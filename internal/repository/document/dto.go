package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	domdoc "github.com/kailas-cloud/legalsearch/internal/domain/document"
)

// corpusFile is the on-disk layout of an authored corpus.
type corpusFile struct {
	Documents []documentDTO `yaml:"documents"`
}

type documentDTO struct {
	ID             string  `yaml:"id"`
	Title          string  `yaml:"title"`
	Summary        string  `yaml:"summary"`
	RelevanceScore float64 `yaml:"relevance_score"`
	Content        string  `yaml:"content"`
}

// parseCorpus decodes YAML into validated domain documents, keeping file order.
func parseCorpus(data []byte) ([]domdoc.Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f corpusFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(f.Documents))
	for i, dto := range f.Documents {
		doc, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("corpus entry %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (d documentDTO) toDomain() (domdoc.Document, error) {
	doc, err := domdoc.New(d.ID, d.Title, d.Content, d.Summary, d.RelevanceScore)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("build document: %w", err)
	}
	return doc, nil
}
