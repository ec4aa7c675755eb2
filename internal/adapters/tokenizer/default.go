package tokenizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
)

// DefaultTokenizer splits text on anything that is not a letter or a
// digit. It is the word-boundary collaborator for the text-level APIs;
// the stemmer itself only ever sees single words.
type DefaultTokenizer struct{}

// NewDefaultTokenizer creates a new default tokenizer.
func NewDefaultTokenizer() ports.Tokenizer {
	return &DefaultTokenizer{}
}

// Tokenize splits text into word tokens.
func (t *DefaultTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
