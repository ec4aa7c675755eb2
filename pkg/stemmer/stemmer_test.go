package stemmer

import (
	"reflect"
	"testing"
)

func TestStemmerPorterBackend(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct{ word, expected string }{
		{"caresses", "caress"},
		{"relational", "relat"},
		{"feudalism", "feudal"},
		{"happy", "happi"},
	}
	for _, tc := range tests {
		if got := s.Stem(tc.word); got != tc.expected {
			t.Errorf("Stem(%q) = %q, want %q", tc.word, got, tc.expected)
		}
	}
}

func TestStemmerSnowballBackend(t *testing.T) {
	s, err := New(WithSnowball())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := s.Stem("running"); got != "run" {
		t.Errorf("Stem(%q) = %q, want %q", "running", got, "run")
	}
}

func TestStemmerLowercase(t *testing.T) {
	s, err := New(WithLowercase())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := s.Stem("Ponies"); got != "poni" {
		t.Errorf("Stem(%q) = %q, want %q", "Ponies", got, "poni")
	}
}

func TestStemmerStemTokens(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := s.StemTokens([]string{"conflated", "troubles", "sized"})
	want := []string{"conflat", "troubl", "size"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StemTokens = %q, want %q", got, want)
	}
}
