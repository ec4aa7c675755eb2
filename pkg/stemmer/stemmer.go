package stemmer

import (
	"context"
	"strings"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/logger"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/segmenter"
	adapter "github.com/baditaflorin/go_porter_stemmer/internal/adapters/stemmer"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/baditaflorin/go_porter_stemmer/internal/warmup"
	"github.com/baditaflorin/l"
)

// Stemmer provides a configurable word-stemming facade over the core
// algorithm, with a selectable backend and optional warm-up.
type Stemmer struct {
	stemmer    ports.Stemmer
	normalizer ports.Normalizer
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring Stemmer.
type Option func(*stemmerConfig)

type stemmerConfig struct {
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Segmenter    ports.Segmenter
	Backend      ports.Stemmer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *stemmerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer to run ahead of stemming.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *stemmerConfig) {
		cfg.Normalizer = n
	}
}

// WithLowercase folds each word to lower case before stemming.
func WithLowercase() Option {
	return func(cfg *stemmerConfig) {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}
}

// WithSegmenter sets a custom grapheme segmenter for the Porter backend.
func WithSegmenter(s ports.Segmenter) Option {
	return func(cfg *stemmerConfig) {
		cfg.Segmenter = s
	}
}

// WithSnowball selects the snowball English (Porter2) backend instead of
// the classic Porter algorithm.
func WithSnowball() Option {
	return func(cfg *stemmerConfig) {
		cfg.Backend = adapter.NewSnowball()
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *stemmerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *stemmerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Stemmer instance.
func New(opts ...Option) (*Stemmer, error) {
	cfg := &stemmerConfig{
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
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
	if cfg.Backend == nil {
		if cfg.Segmenter == nil {
			cfg.Segmenter = segmenter.NewUniseg()
		}
		cfg.Backend = adapter.NewPorter(cfg.Segmenter)
	}

	s := &Stemmer{
		stemmer:    cfg.Backend,
		normalizer: cfg.Normalizer,
		logger:     cfg.Logger,
	}

	if cfg.WarmUp {
		s.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return s, nil
}

// Stem returns the stemmed form of a single word.
func (s *Stemmer) Stem(word string) string {
	if s.normalizer != nil {
		word = strings.TrimSpace(s.normalizer.Normalize(word))
	}
	return s.stemmer.Stem(word)
}

// StemTokens stems every token of an already-tokenized text in order.
func (s *Stemmer) StemTokens(tokens []string) []string {
	stems := make([]string, len(tokens))
	for i, token := range tokens {
		stems[i] = s.Stem(token)
	}
	return stems
}

// WarmUp performs system warm-up to optimize performance.
func (s *Stemmer) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterStemmer(s.stemmer)
	if s.normalizer != nil {
		warmupMgr.RegisterNormalizer(s.normalizer)
	}

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}
