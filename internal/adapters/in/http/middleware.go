package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"barpos/internal/core/domain/model/staff"
	"barpos/internal/core/domain/services"
)

const claimsContextKey = "staffClaims"

// AuthMiddleware authenticates requests from the session cookie and gates
// endpoints on capabilities from the access policy.
type AuthMiddleware struct {
	tokens *TokenManager
	policy services.AccessPolicy
}

// NewAuthMiddleware creates middleware backed by the given token manager
// and access policy.
func NewAuthMiddleware(tokens *TokenManager, policy services.AccessPolicy) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		policy: policy,
	}
}

// Authenticate rejects requests without a valid session cookie and stores
// the verified claims on the request context.
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(authCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorBody("authentication required"))
			}

			claims, err := m.tokens.Parse(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody("session expired or invalid"))
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireCapability rejects authenticated requests whose role lacks the
// capability. Must run after Authenticate.
func (m *AuthMiddleware) RequireCapability(capability services.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorBody("authentication required"))
			}

			role, err := staff.RoleFromString(claims.Role)
			if err != nil || !m.policy.Allows(role, capability) {
				return c.JSON(http.StatusForbidden, errorBody("insufficient permissions"))
			}

			return next(c)
		}
	}
}

// requestClaims returns the claims Authenticate stored on the context.
func requestClaims(c echo.Context) (Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(Claims)
	return claims, ok
}
