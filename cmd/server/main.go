package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/pkg/stemmer"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

var (
	// Classic Porter stemmer
	porterStemmer *stemmer.Stemmer

	// Snowball (Porter2) stemmer, selectable per request
	snowballStemmer *stemmer.Stemmer

	// Logger instance
	logger l.Logger
)

// WordRequest represents a single-word stemming request
type WordRequest struct {
	Word string `json:"word"`
}

// WordResponse represents a single-word stemming response
type WordResponse struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

// TextRequest represents a whole-text stemming request
type TextRequest struct {
	Text      string `json:"text"`
	Algorithm string `json:"algorithm,omitempty"` // "porter" (default) or "snowball"
}

// TextResponse represents a whole-text stemming response
type TextResponse struct {
	Stems          []string `json:"stems"`
	Words          int      `json:"words"`
	ProcessingTime string   `json:"processing_time"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	lowercase := flag.Bool("lowercase", true, "Fold words to lower case before stemming")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting stemming HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	// Initialize stemmers
	initStemmers(*warmUp, *lowercase)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initStemmers initializes the Porter and snowball stemmer instances
func initStemmers(warmUp, lowercase bool) {
	opts := []stemmer.Option{
		stemmer.WithLogger(logger),
	}
	if lowercase {
		opts = append(opts, stemmer.WithLowercase())
	}
	if warmUp {
		opts = append(opts, stemmer.WithWarmUp(true))
	}

	var err error
	porterStemmer, err = stemmer.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize Porter stemmer", "error", err)
		os.Exit(1)
	}

	snowballStemmer, err = stemmer.New(append(opts, stemmer.WithSnowball())...)
	if err != nil {
		logger.Error("Failed to initialize snowball stemmer", "error", err)
		os.Exit(1)
	}

	logger.Info("Stemmers initialized", "warm_up", warmUp, "lowercase", lowercase)
}

// requestHandler routes incoming requests
func requestHandler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case "/health":
		handleHealth(ctx)
	case "/stem":
		handleStemWord(ctx)
	case "/stem/text":
		handleStemText(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	logger.Debug("Request handled",
		"path", path,
		"method", string(ctx.Method()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start),
	)
}

// handleHealth reports server liveness
func handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(`{"status":"ok"}`)
}

// handleStemWord stems a single word
func handleStemWord(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req WordRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Word == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "word is required")
		return
	}
	if strings.ContainsAny(req.Word, " \t\n") {
		writeError(ctx, fasthttp.StatusBadRequest, "word must be a single token")
		return
	}

	writeJSON(ctx, WordResponse{
		Word: req.Word,
		Stem: porterStemmer.Stem(req.Word),
	})
}

// handleStemText tokenizes and stems a whole text
func handleStemText(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req TextRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "text is required")
		return
	}

	s := porterStemmer
	switch req.Algorithm {
	case "", "porter":
	case "snowball":
		s = snowballStemmer
	default:
		writeError(ctx, fasthttp.StatusBadRequest, "algorithm must be porter or snowball")
		return
	}

	start := time.Now()
	tokens := strings.Fields(req.Text)
	stems := s.StemTokens(tokens)

	writeJSON(ctx, TextResponse{
		Stems:          stems,
		Words:          len(stems),
		ProcessingTime: time.Since(start).String(),
	})
}

// writeJSON marshals a response body
func writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

// writeError writes a JSON error response
func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	body, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// createLogger builds the server logger, writing to the given file or stdout
func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}

	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  logFile != "",
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}
