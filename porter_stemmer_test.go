package porterstemmer

import (
	"reflect"
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
		{"totally", "total"},
		{"trouble", "troubl"},
		{"happy", "happi"},
		{"rhythm", "rhythm"},
		{"eau", "eau"},
		{"is", "is"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := Stem(tc.word); got != tc.expected {
			t.Errorf("Stem(%q) = %q, want %q", tc.word, got, tc.expected)
		}
	}
}

func TestStemGraphemeSafety(t *testing.T) {
	if got := Stem("cafés"); got != "café" {
		t.Errorf("Stem(%q) = %q, want %q", "cafés", got, "café")
	}
}

func TestStemTokenized(t *testing.T) {
	got := StemTokenized([]string{"p", "o", "n", "i", "e", "s"})
	want := []string{"p", "o", "n", "i"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StemTokenized(ponies) = %q, want %q", got, want)
	}
}

func TestNewWithLowercase(t *testing.T) {
	ps, err := New(WithLowercase())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := ps.Stem("Totally"); got != "total" {
		t.Errorf("Stem(%q) = %q, want %q", "Totally", got, "total")
	}
}

func TestStemTokens(t *testing.T) {
	ps, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := ps.StemTokens([]string{"stemming", "algorithms", "work"})
	want := []string{"stem", "algorithm", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StemTokens = %q, want %q", got, want)
	}
}

// Stem keeps no state between calls, so concurrent use is safe.
func TestStemConcurrent(t *testing.T) {
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if got := Stem("relational"); got != "relat" {
					t.Errorf("Stem(relational) = %q, want relat", got)
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
