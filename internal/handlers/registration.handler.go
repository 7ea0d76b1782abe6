package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"envportal/internal/app"
	registrationController "envportal/internal/controllers/registration"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/wizard"

	"github.com/gofiber/fiber/v2"
)

type RegistrationHandler struct {
	Handler
	controller registrationController.RegistrationController
	app        app.App
}

func NewRegistrationHandler(app app.App, router fiber.Router) *RegistrationHandler {
	log := logger.New("handlers").File("registration_handler")
	return &RegistrationHandler{
		controller: *app.RegistrationController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RegistrationHandler) Register() {
	registrations := h.router.Group("/registrations")
	registrations.Post("/", h.submit)
	registrations.Post("/validate-step", h.validateStep)
	registrations.Get("/badge/:status", h.badge)

	organizations := h.router.Group("/organizations")
	organizations.Post("/login", h.login)
	organizations.Post("/logout", h.middleware.RequireSession(SessionKindOrganization), h.logout)
	organizations.Get("/me", h.middleware.RequireSession(SessionKindOrganization), h.me)

	admin := h.router.Group("/admin/registrations",
		h.middleware.RequireAdmin(RoleSuperAdmin, RoleReportsAdmin))
	admin.Get("/", h.list)
	admin.Get("/export", h.export)
	admin.Patch("/:id/status", h.transition)
}

func (h *RegistrationHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")

	var form wizard.ClimateActorForm
	var logo *registrationController.LogoUpload

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := json.Unmarshal([]byte(c.FormValue("payload")), &form); err != nil {
			log.Er("failed to parse multipart payload", err)
			return badRequest(c, "failed to parse registration payload")
		}
		if fh, err := c.FormFile("logo"); err == nil {
			data, err := readFormFile(fh)
			if err != nil {
				log.Er("failed to read logo upload", err)
				return badRequest(c, "failed to read logo upload")
			}
			logo = &registrationController.LogoUpload{Filename: fh.Filename, Data: data}
		}
	} else if err := c.BodyParser(&form); err != nil {
		log.Er("failed to parse registration request", err)
		return badRequest(c, "failed to parse registration request")
	}

	application, err := h.controller.Submit(c.Context(), form, logo)
	switch {
	case errors.Is(err, repositories.ErrDuplicateContact):
		return alreadyRegistered(c)
	case errors.Is(err, registrationController.ErrInvalidForm):
		return badRequest(c, "registration form is incomplete")
	case err != nil:
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "application": application})
}

func (h *RegistrationHandler) validateStep(c *fiber.Ctx) error {
	var request struct {
		Step int                     `json:"step"`
		Form wizard.ClimateActorForm `json:"form"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse validation request")
	}

	return c.JSON(fiber.Map{
		"message": "success",
		"valid":   request.Form.ValidateStep(request.Step),
	})
}

func (h *RegistrationHandler) badge(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "success",
		"badge":   BadgeFor(c.Params("status")),
	})
}

func (h *RegistrationHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request OrganizationLoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse login request", err)
		return badRequest(c, "failed to parse login request")
	}

	application, err := h.controller.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, registrationController.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid credentials"})
		}
		return serverError(c, err)
	}

	session, err := h.app.SessionService.Create(
		c.Context(), SessionKindOrganization, application.ID, "")
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "success",
		"token":        session.Token,
		"expiresAt":    session.ExpiresAt,
		"organization": application,
	})
}

func (h *RegistrationHandler) logout(c *fiber.Ctx) error {
	session := c.Locals("session").(Session)
	if err := h.app.SessionService.Destroy(c.Context(), session.Token); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *RegistrationHandler) me(c *fiber.Ctx) error {
	session := c.Locals("session").(Session)

	application, err := h.app.RegistrationRepo.GetByID(c.Context(), session.SubjectID)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "organization": application})
}

func (h *RegistrationHandler) list(c *fiber.Ctx) error {
	applications, err := h.app.RegistrationRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(applications,
		c.Query("q"), RegistrationStatus(c.Query("status")))

	return c.JSON(fiber.Map{"message": "success", "applications": filtered})
}

func (h *RegistrationHandler) export(c *fiber.Ctx) error {
	applications, err := h.app.RegistrationRepo.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	filtered := h.controller.Filter(applications,
		c.Query("q"), RegistrationStatus(c.Query("status")))

	csvData, err := h.controller.ExportCSV(filtered)
	if err != nil {
		return serverError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registrations.csv"`)
	return c.SendString(csvData)
}

func (h *RegistrationHandler) transition(c *fiber.Ctx) error {
	var request struct {
		Status RegistrationStatus `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse status update")
	}

	application, err := h.controller.Transition(c.Context(), c.Params("id"), request.Status)
	if err != nil {
		if errors.Is(err, registrationController.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "invalid status transition"})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}
