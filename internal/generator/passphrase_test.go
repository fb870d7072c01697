package generator

import (
	"strings"
	"testing"
	"unicode"
)

func TestPassphrase(t *testing.T) {
	cfg := DefaultPassphraseConfig()
	phrase, err := Passphrase(cfg)
	if err != nil {
		t.Fatalf("Passphrase() unexpected error: %v", err)
	}

	words := strings.Split(phrase, "-")
	if len(words) != 4 {
		t.Fatalf("Passphrase() produced %d words, want 4", len(words))
	}
	for _, w := range words {
		if !wordInList(w) {
			t.Errorf("word %q not in the built-in list", w)
		}
	}
}

func TestPassphraseNoDuplicateWords(t *testing.T) {
	cfg := PassphraseConfig{Words: 10, Separator: " "}

	for i := 0; i < 20; i++ {
		phrase, err := Passphrase(cfg)
		if err != nil {
			t.Fatalf("Passphrase() unexpected error: %v", err)
		}
		seen := make(map[string]bool)
		for _, w := range strings.Split(phrase, " ") {
			if seen[w] {
				t.Errorf("phrase %q repeats word %q", phrase, w)
			}
			seen[w] = true
		}
	}
}

func TestPassphraseCapitalize(t *testing.T) {
	cfg := PassphraseConfig{Words: 3, Separator: ".", Capitalize: true}

	phrase, err := Passphrase(cfg)
	if err != nil {
		t.Fatalf("Passphrase() unexpected error: %v", err)
	}
	for _, w := range strings.Split(phrase, ".") {
		first := []rune(w)[0]
		if !unicode.IsUpper(first) {
			t.Errorf("word %q not capitalized", w)
		}
	}
}

func TestPassphraseInsufficientWords(t *testing.T) {
	tests := []struct {
		name string
		cfg  PassphraseConfig
	}{
		{
			name: "more words than built-in list",
			cfg:  PassphraseConfig{Words: WordListSize() + 1, Separator: "-"},
		},
		{
			name: "more words than override list",
			cfg:  PassphraseConfig{Words: 4, Separator: "-", WordList: []string{"alpha", "beta"}},
		},
		{
			name: "zero words",
			cfg:  PassphraseConfig{Words: 0, Separator: "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Passphrase(tt.cfg)
			if err != ErrInsufficientWords {
				t.Errorf("Passphrase() error = %v, want %v", err, ErrInsufficientWords)
			}
			if result != "" {
				t.Error("Passphrase() should return empty string on error")
			}
		})
	}
}

func TestPassphraseCustomWordList(t *testing.T) {
	list := []string{"alpha", "beta", "gamma"}
	cfg := PassphraseConfig{Words: 3, Separator: "-", WordList: list}

	phrase, err := Passphrase(cfg)
	if err != nil {
		t.Fatalf("Passphrase() unexpected error: %v", err)
	}
	for _, w := range strings.Split(phrase, "-") {
		found := false
		for _, candidate := range list {
			if w == candidate {
				found = true
			}
		}
		if !found {
			t.Errorf("word %q not from the override list", w)
		}
	}
}

func TestMemorable(t *testing.T) {
	result, err := Memorable(DefaultMemorableConfig())
	if err != nil {
		t.Fatalf("Memorable() unexpected error: %v", err)
	}

	// 4 syllables of 2 chars, capital first letter, 2 trailing digits.
	if len(result) != 10 {
		t.Fatalf("Memorable() length = %d, want 10: %q", len(result), result)
	}
	if !unicode.IsUpper(rune(result[0])) {
		t.Errorf("Memorable() %q does not start with a capital", result)
	}
	suffix := result[len(result)-2:]
	for _, d := range suffix {
		if !unicode.IsDigit(d) {
			t.Errorf("Memorable() suffix %q is not numeric", suffix)
		}
	}
}

func TestMemorableBounds(t *testing.T) {
	if _, err := Memorable(MemorableConfig{Syllables: 0}); err != ErrLengthTooShort {
		t.Errorf("Memorable() error = %v, want %v", err, ErrLengthTooShort)
	}
	if _, err := Memorable(MemorableConfig{Syllables: MaxLength}); err != ErrLengthTooLong {
		t.Errorf("Memorable() error = %v, want %v", err, ErrLengthTooLong)
	}
}

func TestWordListLoaded(t *testing.T) {
	if WordListSize() < 200 {
		t.Fatalf("built-in word list suspiciously small: %d words", WordListSize())
	}
	for _, w := range wordList {
		if w != strings.ToLower(w) {
			t.Errorf("word %q is not lowercase", w)
		}
	}
}

func wordInList(w string) bool {
	for _, candidate := range wordList {
		if w == candidate {
			return true
		}
	}
	return false
}
