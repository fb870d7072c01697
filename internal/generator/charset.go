package generator

// Class identifies a character class with a fixed alphabet.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digits
	Symbols
	Hex
	Custom
)

// Canonical alphabets per class. Pool concatenation follows the order
// lowercase, uppercase, digits, symbols, hex, then custom.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	hexChars       = "0123456789ABCDEF"
)

// classOrder is the documented concatenation order for pool building.
var classOrder = []Class{Lowercase, Uppercase, Digits, Symbols, Hex, Custom}

// Alphabet returns the canonical alphabet for a class. Custom has no
// fixed alphabet and returns the empty string.
func (c Class) Alphabet() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	case Hex:
		return hexChars
	default:
		return ""
	}
}

// String returns the class name as used in API requests and logs.
func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	case Hex:
		return "hex"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// NamedCharsets maps preset names to ready-made custom alphabets.
// These mirror common vault presets: hex for tokens, no_similar drops
// visually ambiguous characters (O/0, l/1, I).
var NamedCharsets = map[string]string{
	"hexadecimal":  hexChars,
	"alphanumeric": lowercaseChars + uppercaseChars + digitChars,
	"letters_only": lowercaseChars + uppercaseChars,
	"easy_symbols": "!@#$%&*+-=?",
	"no_similar":   "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789!@#$%&*",
}
