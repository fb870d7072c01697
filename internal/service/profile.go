package service

import (
	"context"
	"errors"

	"github.com/gochifigter/password-generator/internal/generator"
	"github.com/gochifigter/password-generator/internal/model"
	"github.com/gochifigter/password-generator/internal/repository"
)

var (
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrProfileNameTaken    = errors.New("profile name shadows a built-in profile")
	ErrProfileNotFound     = errors.New("saved profile not found")
)

// ProfileService handles user-defined generation profiles.
type ProfileService struct {
	repo      *repository.ProfileRepository
	minLength int
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo *repository.ProfileRepository, minLength int) *ProfileService {
	return &ProfileService{repo: repo, minLength: minLength}
}

// Save validates and stores a profile for a user. Saving under an
// existing name replaces that profile's settings.
func (s *ProfileService) Save(ctx context.Context, userID int64, req model.SavedProfileRequest) (model.SavedProfileResponse, error) {
	if req.Name == "" {
		return model.SavedProfileResponse{}, ErrProfileNameRequired
	}
	if _, err := generator.ProfileByName(req.Name); err == nil {
		return model.SavedProfileResponse{}, ErrProfileNameTaken
	}

	cfg := profileConfig(req)
	if cfg.Length < s.minLength {
		return model.SavedProfileResponse{}, ErrLengthBelowPolicy
	}
	if cfg.Length > generator.MaxLength {
		return model.SavedProfileResponse{}, generator.ErrLengthTooLong
	}
	// Reject configs that could never generate: empty pool, undersized
	// custom alphabet, length below the guaranteed class count.
	if _, err := generator.Generate(cfg); err != nil {
		return model.SavedProfileResponse{}, err
	}

	p := model.SavedProfile{
		UserID:           userID,
		Name:             req.Name,
		Length:           cfg.Length,
		Lowercase:        cfg.Lowercase,
		Uppercase:        cfg.Uppercase,
		Digits:           cfg.Digits,
		Symbols:          cfg.Symbols,
		Hex:              cfg.Hex,
		CustomChars:      cfg.CustomChars,
		RequireEachClass: cfg.RequireEachClass,
	}

	if err := s.repo.Upsert(ctx, &p); err != nil {
		return model.SavedProfileResponse{}, err
	}

	return profileResponse(p), nil
}

// List returns all saved profiles owned by a user.
func (s *ProfileService) List(ctx context.Context, userID int64) ([]model.SavedProfileResponse, error) {
	profiles, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.SavedProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileResponse(p))
	}
	return out, nil
}

// Delete removes a saved profile by name.
func (s *ProfileService) Delete(ctx context.Context, userID int64, name string) error {
	err := s.repo.Delete(ctx, userID, name)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	return err
}

// Resolve returns the generation config for a profile name: built-in
// profiles first, then the user's saved profiles when authenticated
// (userID > 0 and a repository is available).
func (s *ProfileService) Resolve(ctx context.Context, userID int64, name string) (generator.Config, error) {
	if cfg, err := generator.ProfileByName(name); err == nil {
		return cfg, nil
	}

	if s.repo == nil || userID == 0 {
		return generator.Config{}, generator.ErrUnknownProfile
	}

	p, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return generator.Config{}, generator.ErrUnknownProfile
		}
		return generator.Config{}, err
	}

	return generator.Config{
		Length:           p.Length,
		Lowercase:        p.Lowercase,
		Uppercase:        p.Uppercase,
		Digits:           p.Digits,
		Symbols:          p.Symbols,
		Hex:              p.Hex,
		CustomChars:      p.CustomChars,
		RequireEachClass: p.RequireEachClass,
	}, nil
}

func profileConfig(req model.SavedProfileRequest) generator.Config {
	return generator.Config{
		Length:           req.Length,
		Lowercase:        req.Lowercase,
		Uppercase:        req.Uppercase,
		Digits:           req.Digits,
		Symbols:          req.Symbols,
		Hex:              req.Hex,
		CustomChars:      req.CustomChars,
		RequireEachClass: req.RequireEachClass,
	}
}

func profileResponse(p model.SavedProfile) model.SavedProfileResponse {
	return model.SavedProfileResponse{
		Name:             p.Name,
		Length:           p.Length,
		Lowercase:        p.Lowercase,
		Uppercase:        p.Uppercase,
		Digits:           p.Digits,
		Symbols:          p.Symbols,
		Hex:              p.Hex,
		CustomChars:      p.CustomChars,
		RequireEachClass: p.RequireEachClass,
		UpdatedAt:        p.UpdatedAt,
	}
}
