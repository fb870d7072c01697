// Package generator implements cryptographically secure password,
// pattern and passphrase generation plus a strength heuristic.
//
// Every entry point is a pure function of its config: no state survives
// a call, and all randomness comes from crypto/rand, so concurrent use
// needs no coordination.
package generator

// Length bounds accepted by Generate. Callers with stricter policies
// validate before calling.
const (
	MinLength = 1
	MaxLength = 128
)

// Generate creates a random password according to cfg.
//
// When cfg.RequireEachClass is set, one character is first drawn from
// each enabled class's own alphabet. Drawing from the merged pool alone
// cannot guarantee class coverage (a symbol-heavy pool can yield an
// all-symbol string), so the guaranteed draws come first and a final
// Fisher-Yates shuffle removes their positional bias.
func Generate(cfg Config) (string, error) {
	if cfg.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if cfg.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pool, perClass, err := BuildPool(cfg)
	if err != nil {
		return "", err
	}

	var required [][]rune
	if cfg.RequireEachClass {
		for _, c := range classOrder {
			if alphabet, ok := perClass[c]; ok {
				required = append(required, []rune(alphabet))
			}
		}
		if cfg.Length < len(required) {
			return "", ErrLengthInsufficient
		}
	}

	result := make([]rune, 0, cfg.Length)

	// Guarantee at least one character from each enabled class.
	for _, alphabet := range required {
		r, err := randRune(alphabet)
		if err != nil {
			return "", err
		}
		result = append(result, r)
	}

	// Fill the remaining positions from the full merged pool.
	merged := []rune(pool)
	for len(result) < cfg.Length {
		r, err := randRune(merged)
		if err != nil {
			return "", err
		}
		result = append(result, r)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateMany creates count independent passwords from the same config.
func GenerateMany(cfg Config, count int) ([]string, error) {
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := Generate(cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}
