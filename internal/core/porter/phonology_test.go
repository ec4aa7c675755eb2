package porter

import (
	"testing"
)

func TestRealVowel(t *testing.T) {
	for _, g := range []string{"a", "e", "i", "o", "u"} {
		if !realVowel(g) {
			t.Errorf("realVowel(%q) = false, want true", g)
		}
	}
	for _, g := range []string{"b", "y", "z", "é"} {
		if realVowel(g) {
			t.Errorf("realVowel(%q) = true, want false", g)
		}
	}
}

func TestCharacterTypes(t *testing.T) {
	// A "y" acts as a vowel after a consonant and as a consonant
	// otherwise, so classification alternates along "syzygy".
	tests := []struct {
		word      string
		consonant []bool
	}{
		{"toy", []bool{true, false, true}},
		{"syzygy", []bool{true, false, true, false, true, false}},
		{"yellow", []bool{true, false, true, true, false, true}},
	}

	for _, tc := range tests {
		word := clusters(tc.word)
		for i, want := range tc.consonant {
			if got := isConsonant(word, i); got != want {
				t.Errorf("isConsonant(%q, %d) = %v, want %v", tc.word, i, got, want)
			}
		}
	}
}

func TestContainsVowel(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"toy", true},
		{"syzygy", true},
		{"trjk", false},
		{"rhythm", true}, // the "y" after "h" acts as a vowel
		{"", false},
	}

	for _, tc := range tests {
		if got := containsVowel(clusters(tc.word)); got != tc.expected {
			t.Errorf("containsVowel(%q) = %v, want %v", tc.word, got, tc.expected)
		}
	}
}

func TestEndsDoubleConsonant(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"sell", true},
		{"hopp", true},
		{"greyy", false}, // the final "y" acts as a vowel here
		{"see", false},
		{"ss", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := endsDoubleConsonant(clusters(tc.word)); got != tc.expected {
			t.Errorf("endsDoubleConsonant(%q) = %v, want %v", tc.word, got, tc.expected)
		}
	}
}

func TestEndsCVC(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"awhil", true},
		{"fil", true},
		{"mix", false}, // final "x" is excepted
		{"dew", false}, // final "w" is excepted
		{"day", false}, // final "y" is excepted
		{"fail", false},
		{"up", false},
	}

	for _, tc := range tests {
		if got := endsCVC(clusters(tc.word)); got != tc.expected {
			t.Errorf("endsCVC(%q) = %v, want %v", tc.word, got, tc.expected)
		}
	}
}
