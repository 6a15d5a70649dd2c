package legalsearch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/legalsearch/internal/domain/search/relevance"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	corpus     []byte
	corpusPath string

	snippetMaxLength    int
	snippetContextChars int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		snippetMaxLength:    relevance.DefaultMaxLength,
		snippetContextChars: relevance.DefaultContextChars,
	}
}

// WithCorpus replaces the built-in corpus with a YAML document table.
func WithCorpus(yaml []byte) Option {
	return optionFunc(func(c *clientConfig) {
		c.corpus = yaml
		c.corpusPath = ""
	})
}

// WithCorpusFile loads the corpus from a YAML file. An empty path keeps the built-in corpus.
func WithCorpusFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.corpusPath = path
		c.corpus = nil
	})
}

// WithSnippet sets the snippet budget and the context kept around a match.
// Defaults: 200 and 50.
func WithSnippet(maxLength, contextChars int) Option {
	return optionFunc(func(c *clientConfig) {
		c.snippetMaxLength = maxLength
		c.snippetContextChars = contextChars
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
