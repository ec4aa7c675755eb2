package warmup

import (
	"context"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations: it runs the registered
// components over a fixed vocabulary so buffer pools fill and code paths
// are hot before the first real request.
type Manager struct {
	logger      ports.Logger
	stemmers    []ports.Stemmer
	processors  []ports.StreamProcessor
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterStemmer adds a stemmer to be warmed up
func (wm *Manager) RegisterStemmer(s ports.Stemmer) {
	wm.stemmers = append(wm.stemmers, s)
}

// RegisterStreamProcessor adds a stream processor to be warmed up
func (wm *Manager) RegisterStreamProcessor(proc ports.StreamProcessor) {
	wm.processors = append(wm.processors, proc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.stemmers)+len(wm.processors)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpStemmers(warmupCtx)
	wm.warmUpStreamProcessors(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpStemmers stems the sample vocabulary on every registered stemmer.
func (wm *Manager) warmUpStemmers(ctx context.Context) {
	if len(wm.stemmers) == 0 {
		return
	}

	wm.logger.Debug("Warming up stemmers", "count", len(wm.stemmers))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				word := sampleWords[j%len(sampleWords)]
				for _, stemmer := range wm.stemmers {
					_ = stemmer.Stem(word)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	sampleText := strings.Join(sampleWords, " ")

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpStreamProcessors runs warmup for all registered stream processors
func (wm *Manager) warmUpStreamProcessors(ctx context.Context) {
	if len(wm.processors) == 0 {
		return
	}

	wm.logger.Debug("Warming up stream processors", "count", len(wm.processors))

	sampleText := strings.Join(sampleWords, " ")

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations/10; j++ { // Fewer iterations for streaming
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, processor := range wm.processors {
					_, _ = processor.ProcessStream(ctx, strings.NewReader(sampleText), io.Discard)
				}
			}
		}()
	}

	wg.Wait()
}

// sampleWords exercises every step of the pipeline: plurals, participles,
// double suffixes and the single-letter cleanups.
var sampleWords = []string{
	"caresses", "ponies", "ties", "agreed", "plastered", "motoring",
	"conflated", "troubled", "sized", "hopping", "falling", "happy",
	"relational", "conditional", "digitizer", "analogousli", "operator",
	"feudalism", "decisiveness", "hopefulness", "formaliti", "triplicate",
	"formative", "formalize", "electrical", "hopeful", "goodness",
	"revival", "allowance", "inference", "adjustable", "defensible",
	"replacement", "adoption", "communism", "activate", "effective",
	"probate", "cease", "controll", "rolling", "surveillance",
}
