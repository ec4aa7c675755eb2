package porter

// Stem reduces a word, given as a sequence of grapheme clusters, to its
// stem. The input slice is not modified; the returned slice is a working
// copy threaded through all nine steps in fixed order. Words of two
// clusters or fewer are returned as they came in.
//
// The function is total: every step either rewrites the suffix or passes
// the word through unchanged, so any input, including all-consonant or
// all-vowel words, comes back as a non-empty stem.
func Stem(word []string) []string {
	if len(word) <= 2 {
		return word
	}
	w := make([]string, len(word))
	copy(w, word)

	w = step1a(w)
	w = step1b(w)
	w = step1c(w)
	w = step2(w)
	w = step3(w)
	w = step4(w)
	w = step5a(w)
	w = step5b(w)
	return w
}

// step1a strips plural endings: sses -> ss, ies -> i, ss -> ss, s -> "".
func step1a(word []string) []string {
	return applyRules(word, step1aRules)
}

// step1b strips past and progressive endings:
//
//	m > 0  : eed -> ee
//	*v*    : ed  ->
//	*v*    : ing ->
//
// When the "ed" or "ing" rule fires the cleanup pass runs on the result.
func step1b(word []string) []string {
	n := len(word)
	switch {
	case hasSuffix(word, "e", "e", "d"):
		if measure(word[:n-3]) > 0 {
			return word[:n-1]
		}
	case hasSuffix(word, "e", "d"):
		if containsVowel(word[:n-2]) {
			return step1bCleanup(word[:n-2])
		}
	case hasSuffix(word, "i", "n", "g"):
		if containsVowel(word[:n-3]) {
			return step1bCleanup(word[:n-3])
		}
	}
	return word
}

// step1bCleanup repairs the ending after "ed" or "ing" removal:
//
//	at -> ate, bl -> ble, iz -> ize
//	double consonant not ending l, s or z -> drop one
//	m == 1 and *o -> append e
//
// Checked in that order; at most one adjustment fires.
func step1bCleanup(word []string) []string {
	for _, r := range step1bCleanupRules {
		if hasSuffix(word, r.suffix...) {
			return append(word[:len(word)-len(r.suffix)], r.replacement...)
		}
	}
	if endsDoubleConsonant(word) &&
		!hasSuffix(word, "l") && !hasSuffix(word, "s") && !hasSuffix(word, "z") {
		return word[:len(word)-1]
	}
	if measure(word) == 1 && endsCVC(word) {
		return append(word, "e")
	}
	return word
}

// step1c turns a trailing "y" into "i" when the word contains a vowel.
func step1c(word []string) []string {
	if containsVowel(word) && hasSuffix(word, "y") {
		word[len(word)-1] = "i"
	}
	return word
}

// step2 maps double suffixes to single ones (ational -> ate, ...).
func step2(word []string) []string {
	return applyRules(word, step2Rules)
}

// step3 strips -ic-, -ful, -ness and similar endings.
func step3(word []string) []string {
	return applyRules(word, step3Rules)
}

// step4 takes off the remaining derivational suffixes.
func step4(word []string) []string {
	return applyRules(word, step4Rules)
}

// step5a removes a trailing "e" when the stem measures over 1, or exactly
// 1 if the stem does not end consonant-vowel-consonant.
func step5a(word []string) []string {
	if !hasSuffix(word, "e") {
		return word
	}
	stem := word[:len(word)-1]
	m := measure(stem)
	if m > 1 || (m == 1 && !endsCVC(stem)) {
		return stem
	}
	return word
}

// step5b collapses a trailing "ll" to "l" when the word measures over 1.
func step5b(word []string) []string {
	if hasSuffix(word, "l") && measure(word) > 1 && endsDoubleConsonant(word) {
		return word[:len(word)-1]
	}
	return word
}
