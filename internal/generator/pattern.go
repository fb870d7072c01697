package generator

// Pattern codes select the class drawn at each position.
var patternClasses = map[rune]Class{
	'l': Lowercase,
	'u': Uppercase,
	'd': Digits,
	's': Symbols,
	'x': Hex,
}

// fallbackPool serves positions whose pattern code is not recognized.
const fallbackPool = lowercaseChars + uppercaseChars + digitChars + symbolChars

// FromPattern generates a password from a template string where each
// character picks the class drawn at that position: 'l' lowercase,
// 'u' uppercase, 'd' digit, 's' symbol, 'x' hex. Any other code draws
// from the merged four-class pool. The pattern order is semantic, so no
// shuffle is applied.
func FromPattern(pattern string) (string, error) {
	runes := []rune(pattern)
	if len(runes) < MinLength {
		return "", ErrLengthTooShort
	}
	if len(runes) > MaxLength {
		return "", ErrLengthTooLong
	}

	fallback := []rune(fallbackPool)
	result := make([]rune, len(runes))
	for i, code := range runes {
		alphabet := fallback
		if class, ok := patternClasses[code]; ok {
			alphabet = []rune(class.Alphabet())
		}
		r, err := randRune(alphabet)
		if err != nil {
			return "", err
		}
		result[i] = r
	}

	return string(result), nil
}
