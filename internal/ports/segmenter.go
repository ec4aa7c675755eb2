package ports

// Segmenter defines the interface for splitting text into grapheme
// clusters, preserving order. No normalization and no case folding.
type Segmenter interface {
	Graphemes(text string) []string
}
