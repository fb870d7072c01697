package model

import "time"

// SavedProfile represents a user-defined generation preset in the database.
type SavedProfile struct {
	ID               int64
	UserID           int64
	Name             string
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	Hex              bool
	CustomChars      string
	RequireEachClass bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SavedProfileRequest represents a create/update request for a saved profile.
type SavedProfileRequest struct {
	Name             string `json:"name"`
	Length           int    `json:"length"`
	Lowercase        bool   `json:"lowercase"`
	Uppercase        bool   `json:"uppercase"`
	Digits           bool   `json:"digits"`
	Symbols          bool   `json:"symbols"`
	Hex              bool   `json:"hex"`
	CustomChars      string `json:"custom_chars"`
	RequireEachClass bool   `json:"require_each_class"`
}

// SavedProfileResponse represents a saved profile in API responses.
type SavedProfileResponse struct {
	Name             string    `json:"name"`
	Length           int       `json:"length"`
	Lowercase        bool      `json:"lowercase"`
	Uppercase        bool      `json:"uppercase"`
	Digits           bool      `json:"digits"`
	Symbols          bool      `json:"symbols"`
	Hex              bool      `json:"hex"`
	CustomChars      string    `json:"custom_chars,omitempty"`
	RequireEachClass bool      `json:"require_each_class"`
	UpdatedAt        time.Time `json:"updated_at"`
}
