package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"Tracer-Study-Portal/src/middleware"
	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/services/auth"
	"Tracer-Study-Portal/src/services/drafts"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth          *auth.Service
	Drafts        *drafts.Service
	SecureCookies bool
}

// Login godoc
// @Summary      Login
// @Description  ตรวจสอบ email/password แล้วออก JWT พร้อม cookie access_token และ user_role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      429  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if ok, err := utils.ParseAndValidate(c, &req); !ok {
		return err
	}
	email := auth.NormalizeEmail(req.Email)

	if remaining := utils.LoginCooldown(email); remaining > 0 {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remaining.Seconds()),
		})
	}

	user, err := h.Auth.AuthenticateUser(c.UserContext(), email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		if _, rerr := utils.RegisterFailedLogin(email); rerr != nil {
			log.Println("⚠️ [Auth] cannot count failed login:", rerr)
		}
		log.Printf("[Auth] failed login email=%s ip=%s", email, c.IP())
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}
	claims, err := utils.ParseJWT(token)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}
	utils.ResetLoginAttempts(email)
	if err := utils.SetSessionValue(claims.SessionID(), "access_token", token); err != nil {
		log.Println("⚠️ [Auth] cannot store session token:", err)
	}

	h.setSessionCookies(c, token, user.Role, time.Now().Add(utils.TokenTTL))
	log.Printf("✅ [Auth] login email=%s role=%s ip=%s", user.Email, user.Role, c.IP())

	return c.JSON(fiber.Map{
		"token":     token,
		"expiresIn": int(utils.TokenTTL.Seconds()),
		"user":      user,
		"message":   "Login successful",
	})
}

// Logout godoc
// @Summary      Logout
// @Description  blacklist token, ลบ session และ draft ทั้งหมดของ session นี้
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthController) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*utils.JWTClaims)
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	if err := utils.BlacklistToken(middleware.BearerToken(c), claims.RemainingLifetime()); err != nil {
		log.Println("❌ [Auth] blacklist failed:", err)
	}
	sessionID := claims.SessionID()
	if err := utils.DeleteSession(sessionID); err != nil {
		log.Println("⚠️ [Auth] delete session failed:", err)
	}
	if h.Drafts != nil {
		if err := h.Drafts.DiscardSession(c.UserContext(), sessionID); err != nil {
			log.Println("⚠️ [Auth] discard drafts failed:", err)
		}
	}

	h.setSessionCookies(c, "", "", time.Unix(0, 0))
	log.Printf("[Auth] logout user=%s ip=%s", claims.UserID, c.IP())

	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthController) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Locals("userId"),
		"email": c.Locals("email"),
		"role":  c.Locals("role"),
	})
}

func (h *AuthController) setSessionCookies(c *fiber.Ctx, token, role string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     middleware.UserRoleCookie,
		Value:    role,
		Path:     "/",
		Expires:  expires,
		Secure:   h.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
