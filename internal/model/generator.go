package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length int `json:"length"`
	Count  int `json:"count"`

	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Hex       *bool `json:"hex"`

	// Custom is an explicit alphabet; Charset names a preset alphabet
	// (e.g. "no_similar"). Custom wins when both are set.
	Custom  string `json:"custom"`
	Charset string `json:"charset"`

	RequireEachClass *bool `json:"require_each_class"`
}

// StrengthInfo represents a strength analysis in API responses.
type StrengthInfo struct {
	Length           int     `json:"length"`
	HasLowercase     bool    `json:"has_lowercase"`
	HasUppercase     bool    `json:"has_uppercase"`
	HasDigits        bool    `json:"has_digits"`
	HasSymbols       bool    `json:"has_symbols"`
	Classes          int     `json:"classes"`
	LengthAdequate   bool    `json:"length_adequate"`
	Level            string  `json:"level"`
	IsStrong         bool    `json:"is_strong"`
	EntropyBits      float64 `json:"entropy_bits"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// GenerateResponse represents a password generation response. Batch
// requests fill Passwords; single requests fill Password.
type GenerateResponse struct {
	Password  string        `json:"password,omitempty"`
	Passwords []string      `json:"passwords,omitempty"`
	Length    int           `json:"length"`
	Strength  *StrengthInfo `json:"strength,omitempty"`
}

// PatternRequest represents a pattern-based generation request.
type PatternRequest struct {
	Pattern string `json:"pattern"`
}

// PassphraseRequest represents a word-based passphrase request.
type PassphraseRequest struct {
	Words      int    `json:"words"`
	Separator  string `json:"separator"`
	Capitalize *bool  `json:"capitalize"`
}

// MemorableRequest represents a syllable-based memorable password request.
type MemorableRequest struct {
	Syllables   int   `json:"syllables"`
	Capitalize  *bool `json:"capitalize"`
	DigitSuffix *bool `json:"digit_suffix"`
}

// StrengthRequest represents a standalone strength estimation request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// ProfileInfo represents a built-in generation preset in API responses.
type ProfileInfo struct {
	Name             string `json:"name"`
	Length           int    `json:"length"`
	Lowercase        bool   `json:"lowercase"`
	Uppercase        bool   `json:"uppercase"`
	Digits           bool   `json:"digits"`
	Symbols          bool   `json:"symbols"`
	RequireEachClass bool   `json:"require_each_class"`
}

// CharsetInfo represents a named custom alphabet in API responses.
type CharsetInfo struct {
	Name  string `json:"name"`
	Chars string `json:"chars"`
}
