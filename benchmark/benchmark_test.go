package benchmark

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/segmenter"
	adapter "github.com/baditaflorin/go_porter_stemmer/internal/adapters/stemmer"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/stream"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_porter_stemmer/pkg/stemmer"
	"github.com/baditaflorin/go_porter_stemmer/pkg/streaming"
)

// mockLogger implements a minimal logger for benchmarking
type mockLogger struct{}

func (l *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (l *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (l *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (l *mockLogger) Error(msg string, keysAndValues ...interface{}) {}
func (l *mockLogger) Close() error                                   { return nil }

// generateText creates a text of roughly the specified size by repeating
// a sample sentence rich in stemmable suffixes.
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "the relational conditions of feudalism were totally conflated with the hopefulness of motoring societies and their generalizations"
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	if sb.Len() > size {
		return sb.String()[:size]
	}
	return sb.String()
}

// sampleWords covers every step of the suffix-stripping pipeline.
var sampleWords = []string{
	"caresses", "ponies", "agreed", "motoring", "happy",
	"relational", "vietnamization", "feudalism", "sensibiliti",
	"triplicate", "hopeful", "revival", "adoption", "probate", "controlling",
}

// BenchmarkStemWord measures single-word stemming across both backends.
func BenchmarkStemWord(b *testing.B) {
	backends := []struct {
		name    string
		stemmer interface{ Stem(string) string }
	}{
		{"Porter", adapter.NewPorter(segmenter.NewUniseg())},
		{"Snowball", adapter.NewSnowball()},
	}

	for _, backend := range backends {
		b.Run(backend.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				backend.stemmer.Stem(sampleWords[i%len(sampleWords)])
			}
		})
	}
}

// BenchmarkStemTokens measures the facade over a fixed vocabulary.
func BenchmarkStemTokens(b *testing.B) {
	s, err := stemmer.New()
	if err != nil {
		b.Fatalf("failed to create stemmer: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.StemTokens(sampleWords)
	}
}

// BenchmarkStreaming measures stream stemming over growing input sizes,
// sequential against parallel.
func BenchmarkStreaming(b *testing.B) {
	smallText := generateText(10 * 1024)    // 10 KB
	mediumText := generateText(100 * 1024)  // 100 KB
	largeText := generateText(1024 * 1024)  // 1 MB

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger := &mockLogger{}
	tok := tokenizer.NewDefaultTokenizer()
	porter := adapter.NewPorter(segmenter.NewUniseg())

	sequential := stream.NewProcessor(logger, tok, porter, stream.ProcessingConfig{})
	parallel := stream.NewProcessor(logger, tok, porter, stream.ProcessingConfig{Workers: 4})

	benchmarks := []struct {
		name  string
		proc  *stream.Processor
		input string
	}{
		{"Sequential-10KB", sequential, smallText},
		{"Sequential-100KB", sequential, mediumText},
		{"Sequential-1MB", sequential, largeText},
		{"Parallel-10KB", parallel, smallText},
		{"Parallel-100KB", parallel, mediumText},
		{"Parallel-1MB", parallel, largeText},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))
			for i := 0; i < b.N; i++ {
				reader := strings.NewReader(bm.input)
				if _, err := bm.proc.ProcessStream(ctx, reader, io.Discard); err != nil {
					b.Fatalf("stream processing failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkStreamingFacade measures the public streaming API end to end.
func BenchmarkStreamingFacade(b *testing.B) {
	text := generateText(100 * 1024)

	ss, err := streaming.NewStreamingStemmer(
		streaming.WithChunkSize(32 * 1024),
	)
	if err != nil {
		b.Fatalf("failed to create streaming stemmer: %v", err)
	}

	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader := strings.NewReader(text)
		if _, err := ss.StemStream(ctx, reader, io.Discard); err != nil {
			b.Fatalf("stream stemming failed: %v", err)
		}
	}
}
