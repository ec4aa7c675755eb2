package porter

// realVowel reports whether a cluster is one of the five plain vowels.
func realVowel(g string) bool {
	switch g {
	case "a", "e", "i", "o", "u":
		return true
	}
	return false
}

// isVowel reports whether the cluster at index i acts as a vowel.
//
// "y" flips with left context: preceded by a consonant it acts as a vowel,
// at the start of the word or preceded by a vowel it acts as a consonant.
// The answer depends on the current state of the word, so it is recomputed
// on every query and never cached across rule steps.
func isVowel(word []string, i int) bool {
	g := word[i]
	if realVowel(g) {
		return true
	}
	if i == 0 || g != "y" {
		return false
	}
	return !realVowel(word[i-1])
}

// isConsonant reports whether the cluster at index i acts as a consonant.
func isConsonant(word []string, i int) bool {
	return !isVowel(word, i)
}

// containsVowel reports whether any position in the word acts as a vowel.
func containsVowel(word []string) bool {
	for i := range word {
		if isVowel(word, i) {
			return true
		}
	}
	return false
}

// endsDoubleConsonant reports whether the word ends in two identical
// clusters that act as consonants.
func endsDoubleConsonant(word []string) bool {
	n := len(word)
	if n <= 2 {
		return false
	}
	return word[n-1] == word[n-2] && isConsonant(word, n-1)
}

// endsCVC reports whether the word ends consonant-vowel-consonant where
// the final consonant is not "w", "x" or "y". The algorithm calls this
// condition *o.
func endsCVC(word []string) bool {
	n := len(word)
	if n <= 2 {
		return false
	}
	switch word[n-1] {
	case "w", "x", "y":
		return false
	}
	return isConsonant(word, n-1) && isVowel(word, n-2) && isConsonant(word, n-3)
}
