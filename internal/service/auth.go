package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/openparish/sacristy/internal/domain"
)

var tracer = otel.Tracer("auth")

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"

	// mock auth: every successful login gets the same role
	defaultRole = "ADMIN"
)

// AuthService issues and verifies HMAC-signed bearer tokens. Tokens are
// stateless: every claim needed per-request is inside the token, so no
// server-side session map is kept.
type AuthService struct {
	secret     []byte
	tokenTTL   time.Duration
	refreshTTL time.Duration
}

func NewAuthService(secret string, tokenTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		refreshTTL: refreshTTL,
	}
}

type Identity struct {
	Username    string
	DisplayName string
	Role        string
}

type TokenPair struct {
	Token        string
	RefreshToken string
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
	Kind string `json:"kind"`
}

// Login accepts any non-empty username. This is a mock boundary, not a
// security control; the password is ignored.
func (s *AuthService) Login(ctx context.Context, username, password string) (Identity, TokenPair, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		err := domain.Invalid("username is required")
		span.RecordError(err)
		return Identity{}, TokenPair{}, err
	}

	identity := Identity{
		Username:    username,
		DisplayName: displayName(username),
		Role:        defaultRole,
	}

	pair, err := s.issue(identity)
	if err != nil {
		span.RecordError(err)
		return Identity{}, TokenPair{}, err
	}
	return identity, pair, nil
}

// Verify checks an access token and returns the identity it carries.
func (s *AuthService) Verify(ctx context.Context, token string) (Identity, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Verify")
	defer span.End()

	c, err := s.parse(token, tokenKindAccess)
	if err != nil {
		span.RecordError(err)
		return Identity{}, domain.ErrUnauthorized
	}
	return Identity{Username: c.Subject, DisplayName: displayName(c.Subject), Role: c.Role}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (Identity, TokenPair, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Refresh")
	defer span.End()

	c, err := s.parse(refreshToken, tokenKindRefresh)
	if err != nil {
		span.RecordError(err)
		return Identity{}, TokenPair{}, domain.ErrUnauthorized
	}

	identity := Identity{Username: c.Subject, DisplayName: displayName(c.Subject), Role: c.Role}
	pair, err := s.issue(identity)
	if err != nil {
		span.RecordError(err)
		return Identity{}, TokenPair{}, err
	}
	return identity, pair, nil
}

func (s *AuthService) issue(identity Identity) (TokenPair, error) {
	token, err := s.sign(identity, tokenKindAccess, s.tokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(identity, tokenKindRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Token: token, RefreshToken: refresh}, nil
}

func (s *AuthService) sign(identity Identity, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "sacristy",
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: identity.Role,
		Kind: kind,
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "auth: sign token")
	}
	return signed, nil
}

func (s *AuthService) parse(token, kind string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "auth: parse token")
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("auth: invalid token")
	}
	if c.Kind != kind {
		return nil, errors.Errorf("auth: expected %s token", kind)
	}
	return c, nil
}

func displayName(username string) string {
	if username == "" {
		return ""
	}
	return strings.ToUpper(username[:1]) + username[1:]
}
