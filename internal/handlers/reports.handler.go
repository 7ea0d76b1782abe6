package handlers

import (
	"errors"

	"envportal/internal/app"
	reportsController "envportal/internal/controllers/reports"
	"envportal/internal/logger"
	. "envportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ReportsHandler struct {
	Handler
	controller reportsController.ReportsController
	app        app.App
}

func NewReportsHandler(app app.App, router fiber.Router) *ReportsHandler {
	log := logger.New("handlers").File("reports_handler")
	return &ReportsHandler{
		controller: *app.ReportsController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReportsHandler) Register() {
	reports := h.router.Group("/reports")
	reports.Post("/", h.submit)

	admin := h.router.Group("/admin/reports",
		h.middleware.RequireAdmin(RoleSuperAdmin, RoleReportsAdmin))
	admin.Get("/", h.list)
	admin.Get("/export", h.export)
	admin.Patch("/:id/status", h.transition)
}

func (h *ReportsHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")

	var report EnvironmentalReport
	if err := c.BodyParser(&report); err != nil {
		log.Er("failed to parse report", err)
		return badRequest(c, "failed to parse report")
	}

	created, err := h.controller.Submit(c.Context(), &report)
	if err != nil {
		if errors.Is(err, reportsController.ErrInvalidReport) {
			return badRequest(c, "issue type, location and description are required")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "report": created})
}

func (h *ReportsHandler) list(c *fiber.Ctx) error {
	reports, err := h.app.ReportRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(reports,
		c.Query("q"), ReportStatus(c.Query("status")), c.Query("issueType"))

	return c.JSON(fiber.Map{"message": "success", "reports": filtered})
}

func (h *ReportsHandler) export(c *fiber.Ctx) error {
	reports, err := h.app.ReportRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(reports,
		c.Query("q"), ReportStatus(c.Query("status")), c.Query("issueType"))

	csvData, err := h.controller.ExportCSV(filtered)
	if err != nil {
		return serverError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reports.csv"`)
	return c.SendString(csvData)
}

func (h *ReportsHandler) transition(c *fiber.Ctx) error {
	var request struct {
		Status          ReportStatus `json:"status"`
		ResolutionNotes string       `json:"resolutionNotes"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse status update")
	}

	admin := c.Locals("admin").(AdminUser)

	report, err := h.controller.Transition(
		c.Context(), c.Params("id"), request.Status, request.ResolutionNotes, admin.ID)
	if err != nil {
		if errors.Is(err, reportsController.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "invalid status transition"})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "report": report})
}
