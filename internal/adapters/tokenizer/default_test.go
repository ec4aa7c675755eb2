package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok := NewDefaultTokenizer()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "words and punctuation",
			text:     "Hello, world! It's 42.",
			expected: []string{"Hello", "world", "It", "s", "42"},
		},
		{
			name:     "whitespace only",
			text:     "  \t\n ",
			expected: []string{},
		},
		{
			name:     "unicode letters",
			text:     "naïve café",
			expected: []string{"naïve", "café"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.text)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}
