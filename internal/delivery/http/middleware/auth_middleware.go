package middleware

import (
	"strings"

	"gearshop/internal/delivery/http/response"
	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyClaims  = "authClaims"
	ContextKeyProfile = "authProfile"
)

// AuthMiddleware validates bearer tokens and resolves the caller's role.
// The role always comes from the stored profile record, never from token
// claims; a token alone grants no more than user access.
type AuthMiddleware struct {
	provider service.IdentityProvider
	gw       gateway.RealtimeGateway
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(provider service.IdentityProvider, gw gateway.RealtimeGateway) *AuthMiddleware {
	return &AuthMiddleware{provider: provider, gw: gw}
}

// Authenticate validates the bearer token and loads the caller's profile.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.provider.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		var profile entity.Profile
		found, err := m.gw.Read(c.Request().Context(), gateway.Child(gateway.UsersPath, claims.UID), &profile)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to resolve caller profile")
		}

		claims.Role = entity.RoleUser
		if found {
			claims.Role = profile.Role
			c.Set(ContextKeyProfile, &profile)
		}
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory gating a route group behind a minimum
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(min entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(*service.AuthClaims)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !claims.Role.AtLeast(min) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+min.String()+"' role")
			}

			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims set by Authenticate, or nil on
// unauthenticated routes.
func ClaimsFrom(c echo.Context) *service.AuthClaims {
	claims, _ := c.Get(ContextKeyClaims).(*service.AuthClaims)

	return claims
}
