package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"lamsa/internal/clock"
	"lamsa/internal/log"
	"lamsa/internal/services"
)

type AuthHandler struct {
	Auth  *services.AuthService
	Clock clock.Clock
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if SessionFrom(c) != nil {
		return c.Redirect("/admin")
	}
	return render(c, "login", fiber.Map{"Username": ""})
}

// Login checks the admin pair. A wrong pair is not an HTTP error: the form
// is shown again with a message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	tok, err := h.Auth.Login(username, c.FormValue("password"))
	if errors.Is(err, services.ErrBadCreds) {
		log.Security(c, "auth.login.fail", map[string]any{"username": username})
		return render(c, "login", fiber.Map{
			"Flash":    &Flash{Kind: "error", Message: "Incorrect username or password"},
			"Username": username,
		})
	}
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    tok,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // set true behind HTTPS
		Expires:  h.Clock.Now().Add(h.Auth.TTL()),
	})
	setFlash(c, "success", "Welcome to the dashboard!")
	log.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect("/admin")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	if s := SessionFrom(c); s != nil {
		log.Audit(c, "auth.logout", map[string]any{"session": s.ID})
	}
	return c.Redirect("/")
}
