package generator

// Profile is a named generation preset. The built-in table is read-only
// after package init; user-defined profiles live in the database layer.
type Profile struct {
	Name   string
	Config Config
}

// builtinProfiles maps preset names to configurations, graded by the
// strength a typical output reaches.
var builtinProfiles = map[string]Config{
	"weak": {
		Length:           8,
		Lowercase:        true,
		Digits:           true,
		RequireEachClass: true,
	},
	"medium": {
		Length:           12,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		RequireEachClass: true,
	},
	"strong": {
		Length:           16,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		Symbols:          true,
		RequireEachClass: true,
	},
	"very_strong": {
		Length:           20,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		Symbols:          true,
		RequireEachClass: true,
	},
}

// profileOrder keeps listing output stable, weakest first.
var profileOrder = []string{"weak", "medium", "strong", "very_strong"}

// ProfileByName returns the built-in profile config for name, or
// ErrUnknownProfile when no such preset exists.
func ProfileByName(name string) (Config, error) {
	cfg, ok := builtinProfiles[name]
	if !ok {
		return Config{}, ErrUnknownProfile
	}
	return cfg, nil
}

// Profiles lists the built-in presets in a stable order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profileOrder))
	for _, name := range profileOrder {
		out = append(out, Profile{Name: name, Config: builtinProfiles[name]})
	}
	return out
}
