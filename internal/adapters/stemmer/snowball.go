package stemmer

import (
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/kljensen/snowball"
)

// Snowball implements ports.Stemmer with the snowball English (Porter2)
// stemmer, for callers who want the revised rule set instead of the
// classic algorithm. A word the backend rejects passes through unchanged.
type Snowball struct{}

// NewSnowball creates a snowball-backed stemmer.
func NewSnowball() ports.Stemmer {
	return &Snowball{}
}

// Stem returns the stemmed form of a single word.
func (s *Snowball) Stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", false)
	if err != nil {
		return word
	}
	return stemmed
}
