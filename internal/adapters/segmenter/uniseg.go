package segmenter

import (
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/rivo/uniseg"
)

// UnisegSegmenter splits text into extended grapheme clusters following
// Unicode text segmentation (UAX #29). A base letter with combining marks
// is one cluster, so the stemmer never matches a suffix across the middle
// of a user-perceived character. No normalization and no case folding.
type UnisegSegmenter struct{}

// NewUniseg creates a new grapheme cluster segmenter.
func NewUniseg() ports.Segmenter {
	return &UnisegSegmenter{}
}

// Graphemes returns the grapheme clusters of text in order.
func (s *UnisegSegmenter) Graphemes(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	var cluster string
	for text != "" {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}
