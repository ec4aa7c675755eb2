package ports

// Normalizer defines the interface for text normalization applied before
// stemming. The stemmer itself never folds case; callers who want
// case-insensitive behavior opt in through a normalizer.
type Normalizer interface {
	Normalize(text string) string
}
