package generator

import (
	_ "embed"
	"strings"
	"unicode"
)

//go:embed words.txt
var wordData string

// wordList is the built-in passphrase vocabulary, one lowercase word per line.
var wordList = strings.Fields(wordData)

// syllables is the consonant-vowel table for memorable passwords.
// Sampled with replacement, unlike the word list.
var syllables = []string{
	"ba", "be", "bi", "bo", "bu",
	"da", "de", "di", "do", "du",
	"fa", "fe", "fi", "fo", "fu",
	"ga", "ge", "gi", "go", "gu",
	"ka", "ke", "ki", "ko", "ku",
	"la", "le", "li", "lo", "lu",
	"ma", "me", "mi", "mo", "mu",
	"na", "ne", "ni", "no", "nu",
	"pa", "pe", "pi", "po", "pu",
	"ra", "re", "ri", "ro", "ru",
	"sa", "se", "si", "so", "su",
	"ta", "te", "ti", "to", "tu",
	"va", "ve", "vi", "vo", "vu",
	"za", "ze", "zi", "zo", "zu",
}

// PassphraseConfig controls word-based passphrase generation.
type PassphraseConfig struct {
	Words      int
	Separator  string
	Capitalize bool

	// WordList overrides the built-in vocabulary when non-nil.
	WordList []string
}

// DefaultPassphraseConfig returns 4 words joined by hyphens.
func DefaultPassphraseConfig() PassphraseConfig {
	return PassphraseConfig{Words: 4, Separator: "-"}
}

// Passphrase joins randomly chosen words from the word list. Words are
// sampled without replacement, so asking for more words than the list
// holds fails with ErrInsufficientWords rather than repeating entries.
func Passphrase(cfg PassphraseConfig) (string, error) {
	list := cfg.WordList
	if list == nil {
		list = wordList
	}
	if cfg.Words < 1 || cfg.Words > len(list) {
		return "", ErrInsufficientWords
	}

	words, err := sampleWithoutReplacement(list, cfg.Words)
	if err != nil {
		return "", err
	}

	if cfg.Capitalize {
		for i, w := range words {
			words[i] = capitalizeWord(w)
		}
	}

	return strings.Join(words, cfg.Separator), nil
}

// MemorableConfig controls syllable-based memorable password generation.
type MemorableConfig struct {
	Syllables  int
	Capitalize bool

	// DigitSuffix appends two random digits, e.g. "kodamiru42".
	DigitSuffix bool
}

// DefaultMemorableConfig returns 4 syllables with a capital and digit suffix.
func DefaultMemorableConfig() MemorableConfig {
	return MemorableConfig{Syllables: 4, Capitalize: true, DigitSuffix: true}
}

// Memorable builds a pronounceable password from random syllables,
// sampled with replacement from the syllable table.
func Memorable(cfg MemorableConfig) (string, error) {
	if cfg.Syllables < 1 {
		return "", ErrLengthTooShort
	}
	if cfg.Syllables > MaxLength/2 {
		return "", ErrLengthTooLong
	}

	var sb strings.Builder
	for i := 0; i < cfg.Syllables; i++ {
		j, err := randBelow(len(syllables))
		if err != nil {
			return "", err
		}
		sb.WriteString(syllables[j])
	}

	out := sb.String()
	if cfg.Capitalize {
		out = capitalizeWord(out)
	}
	if cfg.DigitSuffix {
		for i := 0; i < 2; i++ {
			d, err := randBelow(10)
			if err != nil {
				return "", err
			}
			out += string(rune('0' + d))
		}
	}

	return out, nil
}

// WordListSize reports how many words the built-in vocabulary holds.
func WordListSize() int {
	return len(wordList)
}

func capitalizeWord(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
