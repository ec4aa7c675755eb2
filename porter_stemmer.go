// porter_stemmer.go
// Package porterstemmer reduces an inflected English word to its stem
// using the Porter suffix-stripping algorithm. The algorithm runs over
// grapheme clusters (user-perceived characters), not bytes or code
// points, so words carrying combining marks or other multi-code-point
// clusters are handled without ever splitting a cluster.
//
// The zero-configuration entry point is Stem:
//
//	stemmed := porterstemmer.Stem("totally") // "total"
//
// Stem expects a single, already-tokenized word and performs no case
// folding of its own; callers wanting case-insensitive behavior lowercase
// first, or build an instance with New and a normalizer. Every call is
// independent, so Stem may be invoked from any number of goroutines.
package porterstemmer

import (
	"strings"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/logger"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/segmenter"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/stemmer"
	"github.com/baditaflorin/go_porter_stemmer/internal/core/porter"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/baditaflorin/l"
)

var defaultStemmer = stemmer.NewPorter(segmenter.NewUniseg())

// Stem returns the stemmed form of a single word.
func Stem(word string) string {
	return defaultStemmer.Stem(word)
}

// StemTokenized stems a word already split into grapheme clusters and
// returns the stemmed cluster sequence. The input slice is not modified.
func StemTokenized(word []string) []string {
	return porter.Stem(word)
}

// PorterStemmer provides a configurable stemming instance with logging
// and an optional normalization step in front of the algorithm.
type PorterStemmer struct {
	stemmer    ports.Stemmer
	normalizer ports.Normalizer
	logger     ports.Logger
}

// Option defines a functional option for configuring PorterStemmer.
type Option func(*config)

type config struct {
	Logger     ports.Logger
	Normalizer ports.Normalizer
	Segmenter  ports.Segmenter
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithLowercase folds each word to lower case before stemming. The
// algorithm's published behavior assumes lowercase input; this is how
// callers opt in without pre-processing themselves.
func WithLowercase() Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}
}

// WithNormalizer sets a custom normalizer to run ahead of stemming.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithSegmenter sets a custom grapheme segmenter.
func WithSegmenter(s ports.Segmenter) Option {
	return func(cfg *config) {
		cfg.Segmenter = s
	}
}

// New creates a new PorterStemmer instance.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*PorterStemmer, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Segmenter == nil {
		cfg.Segmenter = segmenter.NewUniseg()
	}

	return &PorterStemmer{
		stemmer:    stemmer.NewPorter(cfg.Segmenter),
		normalizer: cfg.Normalizer,
		logger:     cfg.Logger,
	}, nil
}

// Stem returns the stemmed form of a single word, applying the configured
// normalizer first when one is set.
func (ps *PorterStemmer) Stem(word string) string {
	if ps.normalizer != nil {
		word = strings.TrimSpace(ps.normalizer.Normalize(word))
	}
	stemmed := ps.stemmer.Stem(word)
	ps.logger.Debug("Stemmed word",
		"word", word,
		"stem", stemmed,
	)
	return stemmed
}

// StemTokens stems every token of an already-tokenized text in order.
func (ps *PorterStemmer) StemTokens(tokens []string) []string {
	stems := make([]string, len(tokens))
	for i, token := range tokens {
		stems[i] = ps.Stem(token)
	}
	return stems
}
