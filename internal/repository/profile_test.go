package repository

import "testing"

func TestNewProfileRepository(t *testing.T) {
	repo := NewProfileRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil ProfileRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestProfileSentinelError(t *testing.T) {
	if ErrProfileNotFound == nil {
		t.Fatal("ErrProfileNotFound should not be nil")
	}
	if ErrProfileNotFound.Error() != "saved profile not found" {
		t.Fatalf("unexpected error message: %s", ErrProfileNotFound.Error())
	}
}
