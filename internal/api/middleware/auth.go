package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/customer-management/internal/api/metrics"
	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// principalKey is the context key under which the verified caller identity
// is stored for downstream handlers.
const principalKey = "auth.principal"

// TokenExtractor pulls a credential out of an incoming request. Additional
// schemes are added as further implementations, not by subclassing a header
// parser.
type TokenExtractor interface {
	// Extract returns the raw token and true, or false when the request
	// carries no usable credential.
	Extract(r *http.Request) (string, bool)
}

// BearerExtractor reads an `Authorization: Bearer <token>` header. Any other
// scheme or a missing header yields no token.
type BearerExtractor struct{}

func (BearerExtractor) Extract(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Auth extracts and verifies a bearer token on every request it wraps and
// attaches the resulting principal to the context. Requests without a valid
// token are denied with 401 before the handler runs.
func Auth(tokens ports.TokenService, extractor TokenExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractor.Extract(c.Request())
			if !ok {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed authorization header")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(principalKey, claims.Principal())
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller identity attached by Auth.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// SetPrincipal attaches a caller identity directly. Intended for tests.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}
