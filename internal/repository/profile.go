package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gochifigter/password-generator/internal/model"
)

var ErrProfileNotFound = errors.New("saved profile not found")

// ProfileRepository handles saved generation profile persistence.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, name, length, use_lowercase, use_uppercase,
	use_digits, use_symbols, use_hex, custom_chars, require_each_class,
	created_at, updated_at`

// Upsert inserts a saved profile, or replaces the settings of an
// existing profile with the same (user_id, name).
func (r *ProfileRepository) Upsert(ctx context.Context, p *model.SavedProfile) error {
	query := `
	INSERT INTO saved_profiles
		(user_id, name, length, use_lowercase, use_uppercase, use_digits,
		 use_symbols, use_hex, custom_chars, require_each_class)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		length             = VALUES(length),
		use_lowercase      = VALUES(use_lowercase),
		use_uppercase      = VALUES(use_uppercase),
		use_digits         = VALUES(use_digits),
		use_symbols        = VALUES(use_symbols),
		use_hex            = VALUES(use_hex),
		custom_chars       = VALUES(custom_chars),
		require_each_class = VALUES(require_each_class),
		updated_at         = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Length,
		p.Lowercase, p.Uppercase, p.Digits, p.Symbols, p.Hex,
		p.CustomChars, p.RequireEachClass,
	)
	return err
}

// GetByName retrieves a saved profile by owner and name.
func (r *ProfileRepository) GetByName(ctx context.Context, userID int64, name string) (*model.SavedProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM saved_profiles WHERE user_id = ? AND name = ?`

	p := &model.SavedProfile{}
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.Lowercase, &p.Uppercase, &p.Digits, &p.Symbols, &p.Hex,
		&p.CustomChars, &p.RequireEachClass,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return p, nil
}

// ListByUser retrieves all saved profiles for a user, ordered by name.
func (r *ProfileRepository) ListByUser(ctx context.Context, userID int64) ([]model.SavedProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM saved_profiles WHERE user_id = ? ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.SavedProfile
	for rows.Next() {
		var p model.SavedProfile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Length,
			&p.Lowercase, &p.Uppercase, &p.Digits, &p.Symbols, &p.Hex,
			&p.CustomChars, &p.RequireEachClass,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// Delete removes a saved profile by owner and name.
func (r *ProfileRepository) Delete(ctx context.Context, userID int64, name string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_profiles WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
