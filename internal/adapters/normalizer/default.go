package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
)

// DefaultNormalizer lowercases text and replaces punctuation with spaces.
// The stemming core assumes lowercase input when callers want the
// algorithm's published behavior; this adapter is how they opt in.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the input text to lower case and replaces punctuation with spaces.
func (n *DefaultNormalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsPunct(r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
