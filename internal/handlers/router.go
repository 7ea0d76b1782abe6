package handlers

import (
	"envportal/internal/app"
	"envportal/internal/handlers/middleware"
	"envportal/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	setupWebSocketRoute(router, app)

	router.Static(app.StorageService.PublicPath(), app.StorageService.Dir())

	api := router.Group("/api")
	HealthHandler(api, app)
	NewRegistrationHandler(*app, api).Register()
	NewTreePlantingHandler(*app, api).Register()
	NewRecruitmentHandler(*app, api).Register()
	NewReportsHandler(*app, api).Register()
	NewAirQualityHandler(*app, api).Register()
	NewAdminHandler(*app, api).Register()
	NewContentHandler(*app, api).Register()

	return nil
}

// setupWebSocketRoute exposes the admin dashboard event stream.
func setupWebSocketRoute(router fiber.Router, app *app.App) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(func(c *websocket.Conn) {
		app.Websocket.HandleWebSocket(c)
	}))
}
