package stream

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/valyala/bytebufferpool"
)

// MaxJobQueueSize limits the number of pending parallel jobs.
const MaxJobQueueSize = 32

// tokenBatch is one unit of parallel work: a run of tokens in stream order.
type tokenBatch struct {
	id     int
	tokens []string
}

// batchResult carries the stems of one batch back to the collector.
type batchResult struct {
	id    int
	stems []string
}

// processParallel stems the stream with a worker pool. Stemming each word
// is independent (the algorithm keeps no state between calls), so batches
// fan out freely; the collector restores stream order before writing.
func (p *Processor) processParallel(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	start := time.Now()

	workers := p.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan tokenBatch, MaxJobQueueSize)
	results := make(chan batchResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.stemWorker(jobs, results, &wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Read and dispatch batches on a separate goroutine.
	readErrCh := make(chan error, 1)
	bytesCh := make(chan int64, 1)
	go func() {
		var id int
		bytes, err := p.scan(ctx, reader, func(tokens []string) error {
			for len(tokens) > 0 {
				size := p.batchSize
				if size > len(tokens) {
					size = len(tokens)
				}
				select {
				case jobs <- tokenBatch{id: id, tokens: tokens[:size]}:
				case <-ctx.Done():
					return ctx.Err()
				}
				id++
				tokens = tokens[size:]
			}
			return nil
		})
		close(jobs)
		bytesCh <- bytes
		readErrCh <- err
	}()

	// Collect batch results and write them back in stream order.
	pending := make(map[int][]string)
	next := 0
	words := 0
	var writeErr error
	for res := range results {
		pending[res.id] = res.stems
		for {
			stems, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if writeErr != nil {
				continue
			}
			if err := p.writeStems(writer, stems); err != nil {
				writeErr = err
				continue
			}
			words += len(stems)
		}
	}

	bytesProcessed := <-bytesCh
	readErr := <-readErrCh

	result := ports.StreamResult{
		Words:          words,
		BytesProcessed: bytesProcessed,
		ProcessingTime: time.Since(start),
	}
	if readErr != nil {
		return result, readErr
	}
	if writeErr != nil {
		return result, writeErr
	}

	p.logger.Debug("Parallel stream stemming completed",
		"words", words,
		"bytes", bytesProcessed,
		"workers", workers,
		"duration", result.ProcessingTime,
	)
	return result, nil
}

// stemWorker stems batches until the jobs channel closes.
func (p *Processor) stemWorker(jobs <-chan tokenBatch, results chan<- batchResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		stems := make([]string, len(job.tokens))
		for i, token := range job.tokens {
			stems[i] = p.stemmer.Stem(token)
		}
		results <- batchResult{id: job.id, stems: stems}
	}
}

// writeStems writes one batch of stems, space separated.
func (p *Processor) writeStems(writer io.Writer, stems []string) error {
	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)
	for _, s := range stems {
		out.WriteString(s)
		out.WriteByte(' ')
	}
	_, err := writer.Write(out.B)
	return err
}
