package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openparish/sacristy/internal/domain"
)

func newTestAuth() *AuthService {
	return NewAuthService("test-secret", time.Minute, time.Hour)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	auth := newTestAuth()

	identity, pair, err := auth.Login(context.Background(), "sexton", "ignored")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.DisplayName != "Sexton" {
		t.Fatalf("expected capitalized display name, got %q", identity.DisplayName)
	}
	if pair.Token == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens")
	}

	verified, err := auth.Verify(context.Background(), pair.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.Username != "sexton" || verified.Role != identity.Role {
		t.Fatalf("unexpected identity %+v", verified)
	}
}

func TestLoginEmptyUsername(t *testing.T) {
	auth := newTestAuth()

	if _, _, err := auth.Login(context.Background(), "   ", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVerifyRejectsRefreshToken(t *testing.T) {
	auth := newTestAuth()

	_, pair, err := auth.Login(context.Background(), "sexton", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := auth.Verify(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("a refresh token must not pass access verification, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	auth := newTestAuth()

	if _, err := auth.Verify(context.Background(), "not.a.token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	other := NewAuthService("different-secret", time.Minute, time.Hour)
	_, pair, err := other.Login(context.Background(), "sexton", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := newTestAuth().Verify(context.Background(), pair.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for foreign signature, got %v", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	auth := newTestAuth()

	_, pair, err := auth.Login(context.Background(), "sexton", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	identity, next, err := auth.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if identity.Username != "sexton" {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if _, err := auth.Verify(context.Background(), next.Token); err != nil {
		t.Fatalf("refreshed access token must verify: %v", err)
	}

	// an access token is not a refresh token
	if _, _, err := auth.Refresh(context.Background(), pair.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	auth := NewAuthService("test-secret", -time.Minute, time.Hour)

	_, pair, err := auth.Login(context.Background(), "sexton", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := auth.Verify(context.Background(), pair.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}
}
