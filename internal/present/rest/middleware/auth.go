package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/openparish/sacristy/internal/domain"
	"github.com/openparish/sacristy/internal/present/rest/presenter"
	"github.com/openparish/sacristy/internal/service"
)

var tracer = otel.Tracer("auth")

// AuthMiddleware guards the API routes. Every request needs a valid access
// token except the login, refresh and health endpoints.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

var openPaths = map[string]bool{
	"/api/auth/login":   true,
	"/api/auth/refresh": true,
	"/api/health":       true,
}

func (s *AuthMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if !strings.HasPrefix(path, "/api/") || openPaths[path] {
			return next(c)
		}

		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		split := strings.Split(authHeader, " ")
		if len(split) != 2 || split[0] != "Bearer" {
			span.RecordError(domain.ErrUnauthorized)
			return presenter.Unauthorized(c)
		}

		identity, err := s.auth.Verify(ctx, split[1])
		if err != nil {
			span.RecordError(err)
			return presenter.Unauthorized(c)
		}

		ctx = context.WithValue(ctx, domain.RequesterNameCtxKey, identity.Username)
		ctx = context.WithValue(ctx, domain.RequesterRoleCtxKey, identity.Role)
		span.SetAttributes(attribute.String("RequesterName", identity.Username))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
