package generator

// Config describes one generation call. It is a plain value: callers
// build it, pass it in, and nothing mutates it afterwards.
type Config struct {
	Length int

	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
	Hex       bool

	// CustomChars is appended to the pool verbatim. When it is the only
	// source of characters it must contain at least 2 distinct runes.
	CustomChars string

	// RequireEachClass guarantees at least one character from every
	// enabled class (including a non-empty custom alphabet) in the output.
	RequireEachClass bool
}

// DefaultConfig returns sensible defaults: 16 characters, the four main
// classes enabled, with per-class coverage guaranteed.
func DefaultConfig() Config {
	return Config{
		Length:           16,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		Symbols:          true,
		RequireEachClass: true,
	}
}

// enabled reports whether a class contributes to the pool under cfg.
func (cfg Config) enabled(c Class) bool {
	switch c {
	case Lowercase:
		return cfg.Lowercase
	case Uppercase:
		return cfg.Uppercase
	case Digits:
		return cfg.Digits
	case Symbols:
		return cfg.Symbols
	case Hex:
		return cfg.Hex
	case Custom:
		return cfg.CustomChars != ""
	default:
		return false
	}
}

// BuildPool assembles the merged character pool and the per-class
// alphabets for cfg. The pool concatenates enabled class alphabets in
// the fixed order lowercase, uppercase, digits, symbols, hex, then the
// custom alphabet verbatim, so identical configs always produce an
// identical pool.
//
// It returns ErrEmptyPool when no class is enabled and no custom
// characters are given, and ErrCustomTooSmall when the custom alphabet
// is the only source and has fewer than 2 distinct characters.
func BuildPool(cfg Config) (string, map[Class]string, error) {
	var pool string
	perClass := make(map[Class]string)

	for _, c := range classOrder {
		if !cfg.enabled(c) {
			continue
		}
		alphabet := c.Alphabet()
		if c == Custom {
			alphabet = cfg.CustomChars
		}
		pool += alphabet
		perClass[c] = alphabet
	}

	if pool == "" {
		return "", nil, ErrEmptyPool
	}

	// Custom-only mode needs a minimum of variety to be usable.
	if len(perClass) == 1 && perClass[Custom] != "" && distinctRunes(cfg.CustomChars) < 2 {
		return "", nil, ErrCustomTooSmall
	}

	return pool, perClass, nil
}

// distinctRunes counts unique runes in s.
func distinctRunes(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
