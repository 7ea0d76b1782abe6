package handlers

import (
	"errors"

	"envportal/internal/app"
	airQualityController "envportal/internal/controllers/airquality"
	"envportal/internal/logger"
	. "envportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AirQualityHandler struct {
	Handler
	controller airQualityController.AirQualityController
	app        app.App
}

func NewAirQualityHandler(app app.App, router fiber.Router) *AirQualityHandler {
	log := logger.New("handlers").File("airquality_handler")
	return &AirQualityHandler{
		controller: *app.AirQualityController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AirQualityHandler) Register() {
	// Readings are public; management is admin-only.
	airQuality := h.router.Group("/air-quality")
	airQuality.Get("/", h.list)

	admin := h.router.Group("/admin/air-quality",
		h.middleware.RequireAdmin(RoleSuperAdmin, RoleContentAdmin))
	admin.Post("/", h.create)
	admin.Get("/export", h.export)
	admin.Put("/:id/reading", h.updateReading)
	admin.Patch("/:id/status", h.setStatus)
	admin.Delete("/:id", h.delete)
}

func (h *AirQualityHandler) list(c *fiber.Ctx) error {
	stations, err := h.app.AirQualityRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(stations,
		c.Query("q"), StationStatus(c.Query("status")))

	return c.JSON(fiber.Map{"message": "success", "stations": filtered})
}

func (h *AirQualityHandler) create(c *fiber.Ctx) error {
	log := h.log.Function("create")

	var request struct {
		Location   string      `json:"location"`
		AQI        int         `json:"aqi"`
		Pollutants *Pollutants `json:"pollutants,omitempty"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse station request", err)
		return badRequest(c, "failed to parse station request")
	}

	station, err := h.controller.CreateStation(
		c.Context(), request.Location, request.AQI, request.Pollutants)
	if err != nil {
		if errors.Is(err, airQualityController.ErrInvalidReading) {
			return badRequest(c, "AQI must be between 0 and 500")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "station": station})
}

func (h *AirQualityHandler) updateReading(c *fiber.Ctx) error {
	var request struct {
		AQI        int         `json:"aqi"`
		Pollutants *Pollutants `json:"pollutants,omitempty"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse reading")
	}

	station, err := h.controller.UpdateReading(
		c.Context(), c.Params("id"), request.AQI, request.Pollutants)
	if err != nil {
		if errors.Is(err, airQualityController.ErrInvalidReading) {
			return badRequest(c, "AQI must be between 0 and 500")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "station": station})
}

func (h *AirQualityHandler) setStatus(c *fiber.Ctx) error {
	var request struct {
		Status StationStatus `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse status update")
	}

	station, err := h.controller.SetStatus(c.Context(), c.Params("id"), request.Status)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "station": station})
}

func (h *AirQualityHandler) export(c *fiber.Ctx) error {
	stations, err := h.app.AirQualityRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(stations,
		c.Query("q"), StationStatus(c.Query("status")))

	csvData, err := h.controller.ExportCSV(filtered)
	if err != nil {
		return serverError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="air-quality.csv"`)
	return c.SendString(csvData)
}

func (h *AirQualityHandler) delete(c *fiber.Ctx) error {
	if err := h.app.AirQualityRepo.Delete(c.Context(), c.Params("id")); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
