package generator

import (
	"strings"
	"testing"
)

func TestBuildPoolOrder(t *testing.T) {
	cfg := Config{
		Lowercase:   true,
		Uppercase:   true,
		Digits:      true,
		Symbols:     true,
		CustomChars: "€£",
	}

	pool, perClass, err := BuildPool(cfg)
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}

	want := lowercaseChars + uppercaseChars + digitChars + symbolChars + "€£"
	if pool != want {
		t.Errorf("BuildPool() pool = %q, want %q", pool, want)
	}
	if len(perClass) != 5 {
		t.Errorf("BuildPool() per-class count = %d, want 5", len(perClass))
	}
	if perClass[Custom] != "€£" {
		t.Errorf("BuildPool() custom alphabet = %q, want %q", perClass[Custom], "€£")
	}
}

func TestBuildPoolIdempotent(t *testing.T) {
	cfg := Config{Lowercase: true, Digits: true, Hex: true}

	first, _, err := BuildPool(cfg)
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}
	second, _, err := BuildPool(cfg)
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("BuildPool() not order-stable: %q vs %q", first, second)
	}
}

func TestBuildPoolErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "nothing enabled",
			cfg:     Config{},
			wantErr: ErrEmptyPool,
		},
		{
			name:    "custom only single char",
			cfg:     Config{CustomChars: "x"},
			wantErr: ErrCustomTooSmall,
		},
		{
			name:    "custom only repeated char",
			cfg:     Config{CustomChars: "xxxx"},
			wantErr: ErrCustomTooSmall,
		},
		{
			name:    "custom only two distinct chars",
			cfg:     Config{CustomChars: "xy"},
			wantErr: nil,
		},
		{
			name:    "single char custom alongside a class",
			cfg:     Config{Lowercase: true, CustomChars: "x"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BuildPool(tt.cfg)
			if err != tt.wantErr {
				t.Errorf("BuildPool() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNamedCharsets(t *testing.T) {
	if NamedCharsets["hexadecimal"] != hexChars {
		t.Errorf("hexadecimal charset = %q, want %q", NamedCharsets["hexadecimal"], hexChars)
	}
	for name, set := range NamedCharsets {
		if len(set) < 2 {
			t.Errorf("named charset %q too small: %q", name, set)
		}
	}
	for _, similar := range []string{"O", "0", "l", "1", "I", "i"} {
		if strings.Contains(NamedCharsets["no_similar"], similar) {
			t.Errorf("no_similar charset contains ambiguous character %q", similar)
		}
	}
}
