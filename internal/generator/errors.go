package generator

import "errors"

var (
	// Pool configuration errors.
	ErrEmptyPool      = errors.New("at least one character class or a custom alphabet must be selected")
	ErrCustomTooSmall = errors.New("custom alphabet must contain at least 2 distinct characters")

	// Length errors.
	ErrLengthTooShort     = errors.New("password length must be at least 1")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character classes")

	// Passphrase errors.
	ErrInsufficientWords = errors.New("word list is smaller than the requested word count")

	// Profile errors.
	ErrUnknownProfile = errors.New("unknown profile name")
)
