package middleware

import (
	"strings"

	"chamahub/internal/config"
	"chamahub/internal/core/domain"
	"chamahub/internal/pkg/jwt"
	"chamahub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionKey is the context local holding the caller's session
const SessionKey = "session"

// AuthMiddleware creates authentication middleware. It validates the
// access token and stores a domain.Session in the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Build the session from the token claims
		c.Locals(SessionKey, domain.Session{
			UserID: claims.UserID,
			Roles:  domain.RoleSetFromStrings(claims.Roles),
		})

		return c.Next()
	}
}

// GetSession returns the session stored by AuthMiddleware
func GetSession(c *fiber.Ctx) domain.Session {
	if sess, ok := c.Locals(SessionKey).(domain.Session); ok {
		return sess
	}
	return domain.Session{}
}

// RequireCapability creates authorization middleware gated on a
// session capability check
func RequireCapability(check func(domain.RoleSet) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := c.Locals(SessionKey).(domain.Session)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		if !check(sess.Roles) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// AdminOnly middleware allows only admins
func AdminOnly() fiber.Handler {
	return RequireCapability(domain.RoleSet.CanManageMembers)
}

// TreasurerOrAdmin middleware allows treasurers and admins
func TreasurerOrAdmin() fiber.Handler {
	return RequireCapability(domain.RoleSet.CanViewAll)
}
