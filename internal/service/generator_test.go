package service

import (
	"strings"
	"testing"

	"github.com/gochifigter/password-generator/internal/generator"
	"github.com/gochifigter/password-generator/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(8, 20)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Strength == nil {
		t.Fatal("expected strength report attached to single generation")
	}
	if resp.Strength.Classes != 4 {
		t.Errorf("default generation should cover 4 classes, got %d", resp.Strength.Classes)
	}
	if resp.Strength.EntropyBits <= 0 {
		t.Errorf("expected positive entropy estimate, got %f", resp.Strength.EntropyBits)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_NamedCharset(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: 16, Charset: "hexadecimal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if !strings.ContainsRune("0123456789ABCDEF", c) {
			t.Errorf("unexpected character %q in hexadecimal password", c)
		}
	}
}

func TestGenerate_UnknownCharset(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 16, Charset: "klingon"})
	if err != ErrUnknownCharset {
		t.Fatalf("expected ErrUnknownCharset, got %v", err)
	}
}

func TestGenerate_Batch(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: 12, Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	if resp.Password != "" {
		t.Error("batch response should not fill the single password field")
	}
	if resp.Strength != nil {
		t.Error("batch response should not carry a strength report")
	}
}

func TestGenerate_BatchTooLarge(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 12, Count: 50})
	if err != ErrBatchTooLarge {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}
}

func TestGenerate_LengthBelowPolicy(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 4})
	if err != ErrLengthBelowPolicy {
		t.Fatalf("expected ErrLengthBelowPolicy, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if err != generator.ErrLengthTooLong {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterClasses(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != generator.ErrEmptyPool {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestPattern(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Pattern(model.PatternRequest{Pattern: "lluudds"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 7 {
		t.Errorf("expected length 7, got %d", resp.Length)
	}
}

func TestPattern_Empty(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Pattern(model.PatternRequest{})
	if err != generator.ErrLengthTooShort {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestPassphrase_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Passphrase(model.PassphraseRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(strings.Split(resp.Password, "-")); got != 4 {
		t.Errorf("expected 4 words, got %d (%q)", got, resp.Password)
	}
}

func TestPassphrase_TooManyWords(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Passphrase(model.PassphraseRequest{Words: generator.WordListSize() + 1})
	if err != generator.ErrInsufficientWords {
		t.Fatalf("expected ErrInsufficientWords, got %v", err)
	}
}

func TestMemorable_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Memorable(model.MemorableRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4 syllables, capital, two digits.
	if len(resp.Password) != 10 {
		t.Errorf("expected length 10, got %d (%q)", len(resp.Password), resp.Password)
	}
}

func TestStrength(t *testing.T) {
	svc := newTestGeneratorService()

	info := svc.Strength(model.StrengthRequest{Password: "P@ssw0rd!2024"})
	if info.Level != "medium" {
		t.Errorf("expected level medium, got %q", info.Level)
	}
	if info.IsStrong {
		t.Error("13-character password should not rate strong")
	}

	empty := svc.Strength(model.StrengthRequest{})
	if empty.Level != "very_weak" || empty.Length != 0 {
		t.Errorf("empty password should rate very_weak with length 0, got %+v", empty)
	}
}

func TestProfilesListing(t *testing.T) {
	svc := newTestGeneratorService()
	profiles := svc.Profiles()
	if len(profiles) != 4 {
		t.Fatalf("expected 4 built-in profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "weak" || profiles[3].Name != "very_strong" {
		t.Errorf("unexpected profile order: %q ... %q", profiles[0].Name, profiles[3].Name)
	}
}

func TestCharsetsListing(t *testing.T) {
	svc := newTestGeneratorService()
	charsets := svc.Charsets()
	if len(charsets) != 5 {
		t.Fatalf("expected 5 named charsets, got %d", len(charsets))
	}
	for _, cs := range charsets {
		if cs.Chars == "" {
			t.Errorf("charset %q has no characters", cs.Name)
		}
	}
}
