package generator

import "unicode"

// Level is a discrete strength grade.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Medium
	Strong
	VeryStrong
)

// String returns the level label as reported in API responses.
func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "very_weak"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very_strong"
	default:
		return "unknown"
	}
}

// Report describes the composition and estimated strength of a password.
type Report struct {
	Length    int
	HasLower  bool
	HasUpper  bool
	HasDigit  bool
	HasSymbol bool
	Classes   int
	Level     Level
}

// LengthAdequate reports whether the password meets the minimum length
// a strong password needs.
func (r Report) LengthAdequate() bool {
	return r.Length >= 12
}

// IsStrong collapses the graded level into the legacy strong/weak split.
func (r Report) IsStrong() bool {
	return r.Level >= Strong
}

// Estimate classifies a password by length and character-class
// diversity. It is deterministic, accepts any string including the
// empty one, and never fails.
//
// The grade table is evaluated top-down, first match wins:
//
//	length >= 20 and 4 classes  -> very_strong
//	length >= 16 and 3+ classes -> strong
//	length >= 12 and 2+ classes -> medium
//	length >= 8                 -> weak
//	otherwise                   -> very_weak
func Estimate(password string) Report {
	r := Report{}
	for _, c := range password {
		r.Length++
		switch {
		case unicode.IsLower(c):
			r.HasLower = true
		case unicode.IsUpper(c):
			r.HasUpper = true
		case unicode.IsDigit(c):
			r.HasDigit = true
		case !unicode.IsLetter(c) && !unicode.IsNumber(c):
			// Symbol means anything outside the alphanumeric classes.
			r.HasSymbol = true
		}
	}

	for _, present := range []bool{r.HasLower, r.HasUpper, r.HasDigit, r.HasSymbol} {
		if present {
			r.Classes++
		}
	}

	switch {
	case r.Length >= 20 && r.Classes == 4:
		r.Level = VeryStrong
	case r.Length >= 16 && r.Classes >= 3:
		r.Level = Strong
	case r.Length >= 12 && r.Classes >= 2:
		r.Level = Medium
	case r.Length >= 8:
		r.Level = Weak
	default:
		r.Level = VeryWeak
	}

	return r
}
