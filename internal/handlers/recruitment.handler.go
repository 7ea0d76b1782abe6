package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"envportal/internal/app"
	recruitmentController "envportal/internal/controllers/recruitment"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/wizard"

	"github.com/gofiber/fiber/v2"
)

type RecruitmentHandler struct {
	Handler
	controller recruitmentController.RecruitmentController
	app        app.App
}

func NewRecruitmentHandler(app app.App, router fiber.Router) *RecruitmentHandler {
	log := logger.New("handlers").File("recruitment_handler")
	return &RecruitmentHandler{
		controller: *app.RecruitmentController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecruitmentHandler) Register() {
	recruitment := h.router.Group("/recruitment")
	recruitment.Post("/", h.submit)
	recruitment.Post("/validate-step", h.validateStep)
	recruitment.Get("/status/:reference", h.statusByReference)

	admin := h.router.Group("/admin/recruitment",
		h.middleware.RequireAdmin(RoleSuperAdmin, RoleReportsAdmin))
	admin.Get("/", h.list)
	admin.Get("/export", h.export)
	admin.Patch("/:id/status", h.transition)
	admin.Post("/:id/interview", h.scheduleInterview)
}

// submit accepts a multipart request: a JSON payload plus up to four
// supporting documents, uploaded before the record is written.
func (h *RecruitmentHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")

	var form wizard.ForestGuardForm

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := json.Unmarshal([]byte(c.FormValue("payload")), &form); err != nil {
			log.Er("failed to parse multipart payload", err)
			return badRequest(c, "failed to parse application payload")
		}

		mf, err := c.MultipartForm()
		if err != nil {
			return badRequest(c, "failed to parse multipart form")
		}
		for _, fh := range mf.File["documents"] {
			if len(form.Documents) >= MaxRecruitmentDocuments {
				return badRequest(c, "too many documents")
			}
			data, err := readFormFile(fh)
			if err != nil {
				log.Er("failed to read document upload", err)
				return badRequest(c, "failed to read document upload")
			}
			url, err := h.app.StorageService.Save(c.Context(), fh.Filename, data)
			if err != nil {
				return serverError(c, err)
			}
			form.Documents = append(form.Documents, url)
		}
	} else if err := c.BodyParser(&form); err != nil {
		log.Er("failed to parse application request", err)
		return badRequest(c, "failed to parse application request")
	}

	application, err := h.controller.Submit(c.Context(), form)
	if err != nil {
		if errors.Is(err, recruitmentController.ErrInvalidForm) {
			return badRequest(c, "application form is incomplete")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "success",
		"referenceNumber": application.ReferenceNumber,
		"application":     application,
	})
}

func (h *RecruitmentHandler) validateStep(c *fiber.Ctx) error {
	var request struct {
		Step int                    `json:"step"`
		Form wizard.ForestGuardForm `json:"form"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse validation request")
	}

	return c.JSON(fiber.Map{
		"message": "success",
		"valid":   request.Form.ValidateStep(request.Step),
	})
}

// statusByReference lets an applicant check their application with the
// reference number alone.
func (h *RecruitmentHandler) statusByReference(c *fiber.Ctx) error {
	application, err := h.controller.GetByReference(c.Context(), c.Params("reference"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":         "success",
		"referenceNumber": application.ReferenceNumber,
		"status":          application.Status,
		"badge":           BadgeFor(string(application.Status)),
		"interviewAt":     application.InterviewAt,
	})
}

func (h *RecruitmentHandler) list(c *fiber.Ctx) error {
	applications, err := h.app.RecruitmentRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(applications,
		c.Query("q"), RecruitmentStatus(c.Query("status")))

	return c.JSON(fiber.Map{"message": "success", "applications": filtered})
}

func (h *RecruitmentHandler) export(c *fiber.Ctx) error {
	applications, err := h.app.RecruitmentRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(applications,
		c.Query("q"), RecruitmentStatus(c.Query("status")))

	csvData, err := h.controller.ExportCSV(filtered)
	if err != nil {
		return serverError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recruitment.csv"`)
	return c.SendString(csvData)
}

func (h *RecruitmentHandler) transition(c *fiber.Ctx) error {
	var request struct {
		Status   RecruitmentStatus `json:"status"`
		Override bool              `json:"override"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse status update")
	}

	admin := c.Locals("admin").(AdminUser)

	application, err := h.controller.Transition(
		c.Context(), c.Params("id"), request.Status, request.Override, admin.ID)
	if err != nil {
		if errors.Is(err, recruitmentController.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "invalid status transition"})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}

func (h *RecruitmentHandler) scheduleInterview(c *fiber.Ctx) error {
	var request struct {
		At time.Time `json:"at"`
	}
	if err := c.BodyParser(&request); err != nil || request.At.IsZero() {
		return badRequest(c, "failed to parse interview slot")
	}

	admin := c.Locals("admin").(AdminUser)

	application, err := h.controller.ScheduleInterview(
		c.Context(), c.Params("id"), request.At, admin.ID)
	if err != nil {
		if errors.Is(err, recruitmentController.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "invalid status transition"})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}
