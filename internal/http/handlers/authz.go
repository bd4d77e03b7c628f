package handlers

import (
	"lamsa/internal/domain"
	applog "lamsa/internal/log"
	"lamsa/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookie = "session"
	sessionLocal  = "session"
)

// LoadSession verifies the session cookie, if any, and attaches the result
// to the request. Invalid tokens are dropped silently apart from a log line.
func LoadSession(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := c.Cookies(sessionCookie); tok != "" {
			s, err := auth.Verify(tok)
			if err != nil {
				applog.Security(c, "session.invalid", map[string]any{"reason": err.Error()})
			} else {
				c.Locals(sessionLocal, s)
			}
		}
		return c.Next()
	}
}

// SessionFrom returns the verified admin session for this request, or nil.
func SessionFrom(c *fiber.Ctx) *domain.Session {
	s, _ := c.Locals(sessionLocal).(*domain.Session)
	if s == nil || !s.Authenticated {
		return nil
	}
	return s
}

// RequireAdmin guards admin pages; anonymous visitors go to the login form.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionFrom(c) == nil {
			applog.Security(c, "access.denied.admin", nil)
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireAdminAPI is RequireAdmin for JSON endpoints.
func RequireAdminAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionFrom(c) == nil {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		return c.Next()
	}
}
