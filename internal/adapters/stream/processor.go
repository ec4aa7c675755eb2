package stream

import (
	"context"
	"io"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_porter_stemmer/internal/pool"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/valyala/bytebufferpool"
)

// Constants for stream processing
const (
	// DefaultChunkSize defines the default size of each chunk for reading
	DefaultChunkSize = 64 * 1024 // 64KB

	// DefaultBatchSize defines how many tokens one parallel job carries
	DefaultBatchSize = 1000

	// ContextCheckFrequency defines how often to check for context cancellation
	ContextCheckFrequency = 64 // chunks
)

// Processor stems a token stream. Input is read chunk by chunk, split
// into word tokens, each token stemmed, and the stems written to the
// output separated by single spaces. A token split by a chunk boundary
// is carried over and completed with the next chunk.
type Processor struct {
	logger     ports.Logger
	tokenizer  ports.Tokenizer
	stemmer    ports.Stemmer
	normalizer ports.Normalizer

	chunkPool *pool.BufferPool

	chunkSize int
	batchSize int
	workers   int
}

// ProcessingConfig defines configuration for stream stemming.
type ProcessingConfig struct {
	ChunkSize int
	BatchSize int
	// Workers > 1 enables the parallel path with that many worker
	// goroutines; 0 or 1 keeps processing sequential.
	Workers int
	// Normalizer, when set, is applied to the text ahead of tokenizing.
	Normalizer ports.Normalizer
}

// NewProcessor creates a new stream stemming processor.
func NewProcessor(
	logger ports.Logger,
	tokenizer ports.Tokenizer,
	stemmer ports.Stemmer,
	config ProcessingConfig,
) *Processor {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}

	return &Processor{
		logger:     logger,
		tokenizer:  tokenizer,
		stemmer:    stemmer,
		normalizer: config.Normalizer,
		chunkPool:  pool.NewBufferPool(config.ChunkSize),
		chunkSize:  config.ChunkSize,
		batchSize:  config.BatchSize,
		workers:    config.Workers,
	}
}

// ProcessStream stems every token read from reader and writes the stems
// to writer. It returns counts and timing for the run.
func (p *Processor) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	if p.workers > 1 {
		return p.processParallel(ctx, reader, writer)
	}
	return p.processSequential(ctx, reader, writer)
}

// processSequential stems the stream on the calling goroutine.
func (p *Processor) processSequential(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	start := time.Now()

	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	words := 0
	bytesProcessed, err := p.scan(ctx, reader, func(tokens []string) error {
		out.Reset()
		for _, token := range tokens {
			out.WriteString(p.stemmer.Stem(token))
			out.WriteByte(' ')
		}
		words += len(tokens)
		_, werr := writer.Write(out.B)
		return werr
	})

	result := ports.StreamResult{
		Words:          words,
		BytesProcessed: bytesProcessed,
		ProcessingTime: time.Since(start),
	}
	if err != nil {
		return result, err
	}

	p.logger.Debug("Stream stemming completed",
		"words", words,
		"bytes", bytesProcessed,
		"duration", result.ProcessingTime,
	)
	return result, nil
}

// scan reads the stream chunk by chunk and hands complete tokens to emit.
// The trailing partial token of each chunk is held back until the next
// chunk completes it. Returns the number of bytes consumed.
func (p *Processor) scan(ctx context.Context, reader io.Reader, emit func(tokens []string) error) (int64, error) {
	chunkBuffer := p.chunkPool.Get()
	defer p.chunkPool.Put(chunkBuffer)
	chunk := *chunkBuffer

	carry := bytebufferpool.Get()
	defer bytebufferpool.Put(carry)

	var bytesProcessed int64
	chunkCount := 0
	for {
		chunkCount++
		if chunkCount >= ContextCheckFrequency {
			select {
			case <-ctx.Done():
				p.logger.Warn("Processing cancelled by context", "error", ctx.Err())
				return bytesProcessed, ctx.Err()
			default:
				// Continue processing
			}
			chunkCount = 0
		}

		n, err := reader.Read(chunk)
		if n > 0 {
			bytesProcessed += int64(n)
			carry.Write(chunk[:n])
			text := carry.String()
			cut := carryPoint(text)
			if emitErr := p.emitTokens(text[:cut], emit); emitErr != nil {
				return bytesProcessed, emitErr
			}
			rest := text[cut:]
			carry.Reset()
			carry.WriteString(rest)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logger.Error("Failed reading input stream", "error", err)
			return bytesProcessed, err
		}
	}

	// Whatever is still carried is the stream's final token.
	if carry.Len() > 0 {
		if err := p.emitTokens(carry.String(), emit); err != nil {
			return bytesProcessed, err
		}
	}
	return bytesProcessed, nil
}

// emitTokens normalizes and tokenizes a run of text and hands the tokens on.
func (p *Processor) emitTokens(text string, emit func(tokens []string) error) error {
	if text == "" {
		return nil
	}
	if p.normalizer != nil {
		text = p.normalizer.Normalize(text)
	}
	tokens := p.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	return emit(tokens)
}

// carryPoint returns the byte offset where the trailing, possibly
// incomplete token of text begins. Everything before it tokenizes
// safely; the rest must wait for the next chunk.
func carryPoint(text string) int {
	cut := len(text)
	for cut > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:cut])
		if r == utf8.RuneError && size <= 1 {
			// incomplete UTF-8 sequence split by the chunk boundary
			cut--
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			break
		}
		cut -= size
	}
	return cut
}
