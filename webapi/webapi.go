// Package webapi provides the HTTP API of PocketPilot.
// It is organized into sub-packages per resource:
// - auth: signup and login
// - user: the authenticated user's profile
// - finance: domains, transactions, summaries, plans and the voice dialogue
// - goals: savings goals
package webapi

import (
	"strings"

	"github.com/amirasaad/pocketpilot/pkg/app"
	authweb "github.com/amirasaad/pocketpilot/webapi/auth"
	"github.com/amirasaad/pocketpilot/webapi/common"
	_ "github.com/amirasaad/pocketpilot/webapi/docs"
	financeweb "github.com/amirasaad/pocketpilot/webapi/finance"
	goalsweb "github.com/amirasaad/pocketpilot/webapi/goals"
	userweb "github.com/amirasaad/pocketpilot/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "PocketPilot",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorJSON(c, err)
		},
	})

	fiberApp.Use(cors.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:          a.Config.RateLimit.MaxRequests,
		Expiration:   a.Config.RateLimit.Window,
		KeyGenerator: clientIP,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", nil)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("PocketPilot API is running")
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))
	if a.Deps.Metrics != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(a.Deps.Metrics.Handler()))
	}

	finance := financeweb.Services{
		Ledger:  a.LedgerService,
		Budget:  a.BudgetService,
		Savings: a.SavingsService,
		Voice:   a.VoiceService,
	}
	// the client calls everything under /api
	for _, r := range []fiber.Router{fiberApp, fiberApp.Group("/api")} {
		authweb.Routes(r, a.AuthService, a.UserService)
		userweb.Routes(r, a.UserService, a.AuthService, a.Config)
		financeweb.Routes(r, finance, a.AuthService, a.Config)
		goalsweb.Routes(r, a.GoalService, a.AuthService, a.Config)
	}
	return fiberApp
}

// clientIP keys the rate limiter by the first X-Forwarded-For hop, then
// X-Real-IP, then the peer address.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if first, _, found := strings.Cut(forwardedFor, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
