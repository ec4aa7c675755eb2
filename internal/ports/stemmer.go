package ports

// Stemmer defines the interface for reducing a single word to its stem.
// Implementations must be safe for concurrent use.
type Stemmer interface {
	Stem(word string) string
}
