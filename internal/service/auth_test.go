package service

import (
	"context"
	"testing"
	"time"

	"github.com/gochifigter/password-generator/internal/model"
	"github.com/gochifigter/password-generator/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestRegister_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    "",
		Password: "password123",
	})

	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    "test@example.com",
		Password: "",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name     string
		password string
	}{
		{name: "short", password: "abc123"},
		{name: "long but one class", password: "aaaaaaaaaaaaaaaa"},
		{name: "eleven chars two classes", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), model.CreateUserRequest{
				Email:    "test@example.com",
				Password: tt.password,
			})
			if err != ErrPasswordTooWeak {
				t.Errorf("expected ErrPasswordTooWeak, got %v", err)
			}
		})
	}
}
