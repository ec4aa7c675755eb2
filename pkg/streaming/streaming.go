package streaming

import (
	"context"
	"io"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/logger"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/segmenter"
	adapter "github.com/baditaflorin/go_porter_stemmer/internal/adapters/stemmer"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/stream"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/baditaflorin/go_porter_stemmer/internal/warmup"
	"github.com/baditaflorin/l"
)

// StreamResult represents the result of a streaming stemming run.
type StreamResult struct {
	Words          int
	BytesProcessed int64
	ProcessingTime string // Duration as string for easy display
}

// StreamingStemmer stems a token stream read from an io.Reader and writes
// the stems to an io.Writer, for inputs too large to hold in memory.
type StreamingStemmer struct {
	processor ports.StreamProcessor
	logger    ports.Logger
}

// StreamingOption defines a functional option for configuring StreamingStemmer.
type StreamingOption func(*streamingConfig)

type streamingConfig struct {
	ChunkSize    int
	BatchSize    int
	Workers      int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Tokenizer    ports.Tokenizer
	Stemmer      ports.Stemmer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithChunkSize sets a custom chunk size for reading the input stream.
func WithChunkSize(size int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.ChunkSize = size
	}
}

// WithParallel enables parallel stemming with the given number of worker
// goroutines (0 means one per CPU). Output order is preserved.
func WithParallel(workers int) StreamingOption {
	return func(cfg *streamingConfig) {
		if workers <= 0 {
			workers = 2
		}
		cfg.Workers = workers
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer applied ahead of tokenizing.
func WithNormalizer(n ports.Normalizer) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Normalizer = n
	}
}

// WithLowercase folds the stream to lower case before stemming.
func WithLowercase() StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}
}

// WithTokenizer sets a custom tokenizer.
func WithTokenizer(t ports.Tokenizer) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Tokenizer = t
	}
}

// WithStemmer sets a custom stemming backend.
func WithStemmer(s ports.Stemmer) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Stemmer = s
	}
}

// WithSnowball selects the snowball English (Porter2) backend.
func WithSnowball() StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Stemmer = adapter.NewSnowball()
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// NewStreamingStemmer creates a new StreamingStemmer instance.
func NewStreamingStemmer(opts ...StreamingOption) (*StreamingStemmer, error) {
	cfg := &streamingConfig{
		ChunkSize:    stream.DefaultChunkSize,
		BatchSize:    stream.DefaultBatchSize,
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
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = tokenizer.NewDefaultTokenizer()
	}
	if cfg.Stemmer == nil {
		cfg.Stemmer = adapter.NewPorter(segmenter.NewUniseg())
	}

	processor := stream.NewProcessor(cfg.Logger, cfg.Tokenizer, cfg.Stemmer, stream.ProcessingConfig{
		ChunkSize:  cfg.ChunkSize,
		BatchSize:  cfg.BatchSize,
		Workers:    cfg.Workers,
		Normalizer: cfg.Normalizer,
	})

	ss := &StreamingStemmer{
		processor: processor,
		logger:    cfg.Logger,
	}

	if cfg.WarmUp {
		warmupMgr := warmup.NewManager(cfg.Logger, cfg.WarmUpConfig)
		warmupMgr.RegisterStemmer(cfg.Stemmer)
		warmupMgr.RegisterStreamProcessor(processor)
		warmupMgr.WarmUp(context.Background())
	}

	return ss, nil
}

// StemStream stems every token read from reader and writes the stems to
// writer, separated by single spaces.
func (ss *StreamingStemmer) StemStream(ctx context.Context, reader io.Reader, writer io.Writer) (StreamResult, error) {
	res, err := ss.processor.ProcessStream(ctx, reader, writer)
	result := StreamResult{
		Words:          res.Words,
		BytesProcessed: res.BytesProcessed,
		ProcessingTime: res.ProcessingTime.String(),
	}
	return result, err
}
