package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/repository"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"

	"go.uber.org/zap"
)

func newAuthService() *AuthService {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repository.NewMemoryUserRepository(), jwtManager, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "demo",
		Email:    "demo@demo.com",
		Password: "123456",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected tokens in register response")
	}
	if resp.User.Email != "demo@demo.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}

	if _, err := svc.Register(ctx, &dto.RegisterRequest{Email: "demo@demo.com", Password: "x"}); err != ErrUserExists {
		t.Fatalf("duplicate register: expected ErrUserExists, got %v", err)
	}

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@demo.com", Password: "123456"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("login user id = %q, want %q", login.User.ID, resp.User.ID)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@demo.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "demo",
		Email:    "demo@demo.com",
		Password: "123456",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.User.ID != resp.User.ID {
		t.Errorf("refreshed user id = %q, want %q", refreshed.User.ID, resp.User.ID)
	}

	if _, err := svc.RefreshToken(ctx, "not-a-token"); err != ErrInvalidCredentials {
		t.Fatalf("bogus token: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureDefaultUser(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	seed := config.SeedConfig{
		UserEmail:    "demo@demo.com",
		UserPassword: "123456",
		UserName:     "Demo",
	}

	if err := svc.EnsureDefaultUser(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Idempotent on second boot.
	if err := svc.EnsureDefaultUser(ctx, seed); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@demo.com", Password: "123456"}); err != nil {
		t.Fatalf("login as seeded user: %v", err)
	}
}

func TestEnsureDefaultUserSkippedWithSupabase(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	seed := config.SeedConfig{
		SupabaseURL:     "https://example.supabase.co",
		SupabaseAnonKey: "anon-key",
		UserEmail:       "demo@demo.com",
		UserPassword:    "123456",
	}

	if err := svc.EnsureDefaultUser(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@demo.com", Password: "123456"}); err != ErrInvalidCredentials {
		t.Fatalf("user should not be seeded when Supabase is configured, got %v", err)
	}
}
