// Package porter implements the Porter suffix-stripping algorithm over
// grapheme clusters. A word is represented as an ordered slice of clusters
// and every rule addresses positions in that slice, never bytes or code
// points, so multi-code-point clusters (a letter plus combining marks) are
// never split by a suffix match.
//
// The package is purely functional: Stem copies its input, threads the
// working copy through the nine rule steps and returns it. There is no
// shared state, so calls are safe from any number of goroutines.
package porter

// hasSuffix reports whether word ends with the given clusters, compared
// cluster by cluster.
func hasSuffix(word []string, suffix ...string) bool {
	if len(word) < len(suffix) {
		return false
	}
	offset := len(word) - len(suffix)
	for i, g := range suffix {
		if word[offset+i] != g {
			return false
		}
	}
	return true
}

// clusters splits an ASCII pattern string into single-character clusters.
// Used to declare the rule tables; input words come pre-segmented.
func clusters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
