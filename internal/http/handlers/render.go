package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const layout = "layouts/main"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if s := SessionFrom(c); s != nil {
		data["Session"] = s
	}
	// token placed by the csrf middleware for the page's forms
	if tok, ok := c.Locals("csrf").(string); ok && tok != "" {
		data["CSRF"] = tok
	}
	if _, set := data["Flash"]; !set {
		if f := popFlash(c); f != nil {
			data["Flash"] = f
		}
	}
	return c.Render(tmpl, data, layout)
}
