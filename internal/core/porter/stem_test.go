package porter

import (
	"strings"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct{ word, expected string }{
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"ties", "ti"},
		{"agreed", "agre"},
		{"feudalism", "feudal"},
		{"relational", "relat"},
		{"conflated", "conflat"},
		{"surveillance", "surveil"},
		{"totally", "total"},
		{"stemming", "stem"},
		{"trouble", "troubl"},
		{"happy", "happi"},
		{"controlling", "control"},
	}

	for _, tc := range tests {
		if got := strings.Join(Stem(clusters(tc.word)), ""); got != tc.expected {
			t.Errorf("Stem(%q) = %q, want %q", tc.word, got, tc.expected)
		}
	}
}

// Short words and words with no matching suffix must come through every
// step unchanged, including all-consonant and all-vowel inputs.
func TestStemPassThrough(t *testing.T) {
	for _, word := range []string{"", "a", "is", "be", "rhythm", "eau", "trjk"} {
		got := strings.Join(Stem(clusters(word)), "")
		if got != word {
			t.Errorf("Stem(%q) = %q, want it unchanged", word, got)
		}
	}
}

// Stemming an already-reduced word must return it as is.
func TestStemFixedPoints(t *testing.T) {
	for _, stem := range []string{"caress", "cat", "total", "stem", "feudal", "relat", "surveil", "control"} {
		got := strings.Join(Stem(clusters(stem)), "")
		if got != stem {
			t.Errorf("Stem(%q) = %q, want the fixed point", stem, got)
		}
	}
}

// A multi-code-point cluster is a single unit: it never equals a plain
// letter, so no suffix rule can split or match across it.
func TestStemGraphemeClusters(t *testing.T) {
	word := []string{"c", "a", "f", "é", "s"}
	got := Stem(word)
	want := "café"
	if strings.Join(got, "") != want {
		t.Errorf("Stem(cafés) = %q, want %q", strings.Join(got, ""), want)
	}

	// The trailing accented cluster must not be treated as an "e".
	word = []string{"r", "a", "t", "é"}
	if got := strings.Join(Stem(word), ""); got != "raté" {
		t.Errorf("Stem(raté) = %q, want %q", got, "raté")
	}
}

// The input slice is never modified.
func TestStemDoesNotMutateInput(t *testing.T) {
	word := clusters("stemming")
	original := strings.Join(word, "")
	Stem(word)
	if strings.Join(word, "") != original {
		t.Errorf("Stem mutated its input: %q", strings.Join(word, ""))
	}
}
