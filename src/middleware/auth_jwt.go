package middleware

import (
	"strings"

	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// BearerToken returns the token from the Authorization header, falling back
// to the access_token cookie set at login.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return c.Cookies(AccessTokenCookie)
}

func AuthJWT(c *fiber.Ctx) error {
	tokenStr := BearerToken(c)
	if tokenStr == "" {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}
	if blacklisted, _ := utils.IsTokenBlacklisted(tokenStr); blacklisted {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)
	c.Locals("sessionId", claims.SessionID())
	c.Locals("claims", claims)

	return c.Next()
}

// RequireRole must run after AuthJWT. Roles compare case-insensitively.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if strings.EqualFold(role, r) {
				return c.Next()
			}
		}
		return utils.HandleError(c, fiber.StatusForbidden, "Insufficient role")
	}
}
