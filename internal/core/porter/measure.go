package porter

// measure computes m, the number of vowel-run to consonant-run transitions
// in the word's consonant-vowel structure. Writing C for a consonant run
// and V for a vowel run, every word has the form
//
//	[C](VC)^m[V]
//
// and m is the exponent. The leading consonant run and trailing vowel run
// contribute nothing. The empty word and single-cluster words measure 0.
//
// The measure is always computed against the current working copy; earlier
// steps may have changed the classification of a trailing "y".
func measure(word []string) int {
	m := 0
	if len(word) == 0 {
		return m
	}
	inVowelRun := isVowel(word, 0)
	for i := 1; i < len(word); i++ {
		v := isVowel(word, i)
		if inVowelRun && !v {
			m++
		}
		inVowelRun = v
	}
	return m
}
