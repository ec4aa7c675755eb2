package ports

// Tokenizer defines the interface for splitting running text into word
// tokens. Word-boundary detection is a collaborator of the stemmer, not
// part of the algorithm itself.
type Tokenizer interface {
	Tokenize(text string) []string
}
