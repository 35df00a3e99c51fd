package middleware

import (
	"log"
	"net/url"
	"strings"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	AccessTokenCookie = "access_token"
	UserRoleCookie    = "user_role"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Outcome is the navigation result chosen by the route guard.
type Outcome int

const (
	Pass Outcome = iota
	RedirectLogin
	RedirectDashboard
)

func (o Outcome) String() string {
	switch o {
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "pass"
	}
}

type Decision struct {
	Outcome  Outcome
	Location string
}

// Credential is what the guard knows about the caller: whether a usable
// session token was presented and the cached role string.
type Credential struct {
	Authenticated bool
	Role          string
}

// Decide applies the guard rules in order; the first matching rule wins.
func Decide(cfg MatcherConfig, path string, cred Credential) Decision {
	switch {
	case cfg.isAuthPath(path):
		if cred.Authenticated {
			return Decision{Outcome: RedirectDashboard, Location: DashboardPath}
		}
		return Decision{Outcome: Pass}

	case cfg.isPublicException(path):
		return Decision{Outcome: Pass}

	case cfg.isProtected(path) && !cred.Authenticated:
		return Decision{
			Outcome:  RedirectLogin,
			Location: LoginPath + "?redirect=" + url.QueryEscape(path),
		}

	case cfg.isAdminOnly(path) && cred.Authenticated:
		if !strings.EqualFold(strings.TrimSpace(cred.Role), models.RoleAdmin) {
			return Decision{Outcome: RedirectDashboard, Location: DashboardPath}
		}
	}
	return Decision{Outcome: Pass}
}

// TokenVerifier reports whether a session token may be used. It never errors:
// anything it cannot accept counts as no token.
type TokenVerifier interface {
	Verify(token string) bool
}

// JWTVerifier accepts tokens that parse with the configured secret and are
// not blacklisted.
type JWTVerifier struct{}

func (JWTVerifier) Verify(token string) bool {
	if token == "" {
		return false
	}
	if _, err := utils.ParseJWT(token); err != nil {
		return false
	}
	blacklisted, err := utils.IsTokenBlacklisted(token)
	if err != nil {
		log.Println("⚠️ [RouteGuard] blacklist lookup failed:", err)
		return true
	}
	return !blacklisted
}

// RouteGuard runs Decide for every request using the access_token and
// user_role cookies. It is a UX convenience; the API enforces access itself.
func RouteGuard(cfg MatcherConfig, verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		cred := Credential{
			Authenticated: verifier.Verify(c.Cookies(AccessTokenCookie)),
			Role:          c.Cookies(UserRoleCookie),
		}

		d := Decide(cfg, path, cred)
		if d.Outcome == Pass {
			return c.Next()
		}

		log.Printf("[RouteGuard] %s -> %s (%s)", path, d.Location, d.Outcome)
		c.Set("Cache-Control", "no-store")
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Redirect(d.Location, fiber.StatusFound)
	}
}
