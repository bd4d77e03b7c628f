package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pkg/errors"

	"lamsa/internal/config"
	"lamsa/internal/http/handlers"
	applog "lamsa/internal/log"
)

const friendlyError = "Something went wrong. Please try again."

// errorHandler logs the failure and answers without leaking internals: JSON
// under /api, the error page elsewhere.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := friendlyError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}
	applog.Error(c, "server.error", err, map[string]any{"code": code})

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(code).Render("error", fiber.Map{"Message": msg}, "layouts/main"); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// NewApp builds the storefront: middleware, static assets and every route.
func NewApp(cfg config.Config, deps *handlers.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        NewEngine(cfg.TemplatesDir, false),
		ErrorHandler: errorHandler,
		// category names may carry spaces or Arabic text
		UnescapePath: true,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: applog.Writer()}))
	app.Use(helmet.New(helmet.Config{
		// product images are hot-linked
		CrossOriginEmbedderPolicy: "unsafe-none",
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(handlers.LoadSession(deps.Auth))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     "csrf",
		// the JSON API is called by fetch and carries no form token
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/static/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{"Message": "Security check failed. Please refresh and try again."}, "layouts/main")
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", cfg.StaticDir)

	// Public pages
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/category/:cat", deps.CatalogHandler.Category)

	// Auth
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Get("/logout", deps.AuthHandler.Logout)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin())
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/add", deps.AdminHandler.AddProduct)
	admin.Post("/delete/:id", deps.AdminHandler.DeleteProduct)

	// API
	api := app.Group("/api")
	api.Post("/buy/:id", deps.PurchaseHandler.Buy)
	api.Get("/chart-data", handlers.RequireAdminAPI(), deps.AdminHandler.ChartData)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{"Message": "Page not found"}, "layouts/main")
	})

	return app
}
