package service

import (
	"errors"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/gochifigter/password-generator/internal/generator"
	"github.com/gochifigter/password-generator/internal/model"
)

var (
	ErrLengthBelowPolicy = errors.New("password length below the configured minimum")
	ErrBatchTooLarge     = errors.New("requested batch size exceeds the configured maximum")
	ErrUnknownCharset    = errors.New("unknown named charset")
)

// GeneratorService handles password generation business logic. It
// enforces service policy (minimum length, batch cap) on top of the
// core generator bounds.
type GeneratorService struct {
	minLength int
	maxBatch  int
}

// NewGeneratorService creates a new GeneratorService with the given
// policy limits.
func NewGeneratorService(minLength, maxBatch int) *GeneratorService {
	return &GeneratorService{minLength: minLength, maxBatch: maxBatch}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg, err := s.configFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > s.maxBatch {
		return model.GenerateResponse{}, ErrBatchTooLarge
	}

	if count == 1 {
		password, err := generator.Generate(cfg)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		return model.GenerateResponse{
			Password: password,
			Length:   cfg.Length,
			Strength: analyze(password),
		}, nil
	}

	passwords, err := generator.GenerateMany(cfg, count)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Passwords: passwords,
		Length:    cfg.Length,
	}, nil
}

// FromConfig produces a single password from a core config, bypassing
// request mapping. Used by the profile paths.
func (s *GeneratorService) FromConfig(cfg generator.Config) (model.GenerateResponse, error) {
	password, err := generator.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Password: password,
		Length:   cfg.Length,
		Strength: analyze(password),
	}, nil
}

// Pattern produces a password from a template string. Pattern order is
// semantic, so no policy minimum applies beyond the core bounds.
func (s *GeneratorService) Pattern(req model.PatternRequest) (model.GenerateResponse, error) {
	password, err := generator.FromPattern(req.Pattern)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Password: password,
		Length:   len([]rune(password)),
		Strength: analyze(password),
	}, nil
}

// Passphrase produces a word-based passphrase.
func (s *GeneratorService) Passphrase(req model.PassphraseRequest) (model.GenerateResponse, error) {
	cfg := generator.DefaultPassphraseConfig()
	if req.Words != 0 {
		cfg.Words = req.Words
	}
	if req.Separator != "" {
		cfg.Separator = req.Separator
	}
	cfg.Capitalize = boolOrDefault(req.Capitalize, false)

	phrase, err := generator.Passphrase(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Password: phrase,
		Length:   len([]rune(phrase)),
		Strength: analyze(phrase),
	}, nil
}

// Memorable produces a syllable-based pronounceable password.
func (s *GeneratorService) Memorable(req model.MemorableRequest) (model.GenerateResponse, error) {
	cfg := generator.DefaultMemorableConfig()
	if req.Syllables != 0 {
		cfg.Syllables = req.Syllables
	}
	cfg.Capitalize = boolOrDefault(req.Capitalize, cfg.Capitalize)
	cfg.DigitSuffix = boolOrDefault(req.DigitSuffix, cfg.DigitSuffix)

	password, err := generator.Memorable(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Password: password,
		Length:   len([]rune(password)),
		Strength: analyze(password),
	}, nil
}

// Strength analyzes an arbitrary password without generating anything.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthInfo {
	return *analyze(req.Password)
}

// Profiles lists the built-in presets.
func (s *GeneratorService) Profiles() []model.ProfileInfo {
	profiles := generator.Profiles()
	out := make([]model.ProfileInfo, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, model.ProfileInfo{
			Name:             p.Name,
			Length:           p.Config.Length,
			Lowercase:        p.Config.Lowercase,
			Uppercase:        p.Config.Uppercase,
			Digits:           p.Config.Digits,
			Symbols:          p.Config.Symbols,
			RequireEachClass: p.Config.RequireEachClass,
		})
	}
	return out
}

// Charsets lists the named custom alphabets.
func (s *GeneratorService) Charsets() []model.CharsetInfo {
	out := make([]model.CharsetInfo, 0, len(generator.NamedCharsets))
	for _, name := range []string{"alphanumeric", "easy_symbols", "hexadecimal", "letters_only", "no_similar"} {
		out = append(out, model.CharsetInfo{Name: name, Chars: generator.NamedCharsets[name]})
	}
	return out
}

// configFromRequest maps an API request onto a core config, applying
// defaults and the service length policy.
func (s *GeneratorService) configFromRequest(req model.GenerateRequest) (generator.Config, error) {
	custom := req.Custom
	if custom == "" && req.Charset != "" {
		named, ok := generator.NamedCharsets[req.Charset]
		if !ok {
			return generator.Config{}, ErrUnknownCharset
		}
		custom = named
	}

	// A request that names a charset (or gives custom characters) while
	// leaving the class flags unset means "use only those characters".
	classDefault := custom == ""

	cfg := generator.Config{
		Length:           req.Length,
		Lowercase:        boolOrDefault(req.Lowercase, classDefault),
		Uppercase:        boolOrDefault(req.Uppercase, classDefault),
		Digits:           boolOrDefault(req.Digits, classDefault),
		Symbols:          boolOrDefault(req.Symbols, classDefault),
		Hex:              boolOrDefault(req.Hex, false),
		CustomChars:      custom,
		RequireEachClass: boolOrDefault(req.RequireEachClass, true),
	}

	if cfg.Length == 0 {
		cfg.Length = 16
	}
	if cfg.Length < s.minLength {
		return generator.Config{}, ErrLengthBelowPolicy
	}

	return cfg, nil
}

// analyze combines the graded composition report with the zxcvbn
// entropy model for the response payload.
func analyze(password string) *model.StrengthInfo {
	report := generator.Estimate(password)

	info := &model.StrengthInfo{
		Length:         report.Length,
		HasLowercase:   report.HasLower,
		HasUppercase:   report.HasUpper,
		HasDigits:      report.HasDigit,
		HasSymbols:     report.HasSymbol,
		Classes:        report.Classes,
		LengthAdequate: report.LengthAdequate(),
		Level:          report.Level.String(),
		IsStrong:       report.IsStrong(),
	}

	if password != "" {
		match := zxcvbn.PasswordStrength(password, nil)
		info.EntropyBits = match.Entropy
		info.CrackTimeDisplay = match.CrackTimeDisplay
	}

	return info
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
