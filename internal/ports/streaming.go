package ports

import (
	"context"
	"io"
	"time"
)

// StreamProcessor defines the interface for stemming a stream of text.
type StreamProcessor interface {
	// ProcessStream tokenizes the input stream, stems every token and
	// writes the stemmed tokens to the writer separated by single spaces.
	ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (StreamResult, error)
}

// StreamResult holds the outcome of a streaming stemming run.
type StreamResult struct {
	// Words is the number of tokens stemmed.
	Words int
	// BytesProcessed is the number of input bytes consumed.
	BytesProcessed int64
	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}
