package stemmer

import (
	"github.com/baditaflorin/go_porter_stemmer/internal/core/porter"
	"github.com/baditaflorin/go_porter_stemmer/internal/pool"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
)

// Porter implements ports.Stemmer with the Porter algorithm over grapheme
// clusters. The segmenter provides the cluster view of each word; joining
// the stemmed clusters back together goes through a pooled builder.
type Porter struct {
	segmenter ports.Segmenter
	builders  *pool.StringBuilderPool
}

// NewPorter creates a Porter stemmer backed by the given segmenter.
func NewPorter(segmenter ports.Segmenter) ports.Stemmer {
	return &Porter{
		segmenter: segmenter,
		builders:  pool.NewStringBuilderPool(),
	}
}

// Stem returns the stemmed form of a single word.
func (p *Porter) Stem(word string) string {
	stemmed := porter.Stem(p.segmenter.Graphemes(word))

	sb := p.builders.Get()
	for _, g := range stemmed {
		sb.WriteString(g)
	}
	out := sb.String()
	p.builders.Put(sb)
	return out
}
