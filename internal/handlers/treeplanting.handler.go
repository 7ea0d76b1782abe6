package handlers

import (
	"errors"

	"envportal/internal/app"
	treePlantingController "envportal/internal/controllers/treeplanting"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/wizard"

	"github.com/gofiber/fiber/v2"
)

type TreePlantingHandler struct {
	Handler
	controller treePlantingController.TreePlantingController
	app        app.App
}

func NewTreePlantingHandler(app app.App, router fiber.Router) *TreePlantingHandler {
	log := logger.New("handlers").File("treeplanting_handler")
	return &TreePlantingHandler{
		controller: *app.TreePlantingController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TreePlantingHandler) Register() {
	treePlanting := h.router.Group("/tree-planting")
	treePlanting.Post("/", h.submit)
	treePlanting.Post("/validate-step", h.validateStep)
	treePlanting.Post("/login", h.login)
	treePlanting.Post("/logout", h.middleware.RequireSession(SessionKindTreePlanting), h.logout)
	treePlanting.Get("/me", h.middleware.RequireSession(SessionKindTreePlanting), h.me)

	admin := h.router.Group("/admin/tree-planting",
		h.middleware.RequireAdmin(RoleSuperAdmin, RoleReportsAdmin))
	admin.Get("/", h.list)
	admin.Patch("/:id/status", h.transition)
}

func (h *TreePlantingHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")

	var form wizard.TreePlantingForm
	if err := c.BodyParser(&form); err != nil {
		log.Er("failed to parse application request", err)
		return badRequest(c, "failed to parse application request")
	}

	application, err := h.controller.Submit(c.Context(), form)
	switch {
	case errors.Is(err, repositories.ErrDuplicateContact):
		return alreadyRegistered(c)
	case errors.Is(err, treePlantingController.ErrInvalidForm):
		return badRequest(c, "application form is incomplete")
	case err != nil:
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "application": application})
}

func (h *TreePlantingHandler) validateStep(c *fiber.Ctx) error {
	var request struct {
		Step int                     `json:"step"`
		Form wizard.TreePlantingForm `json:"form"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse validation request")
	}

	return c.JSON(fiber.Map{
		"message": "success",
		"valid":   request.Form.ValidateStep(request.Step),
	})
}

func (h *TreePlantingHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request OrganizationLoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse login request", err)
		return badRequest(c, "failed to parse login request")
	}

	application, err := h.controller.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, treePlantingController.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid credentials"})
		}
		return serverError(c, err)
	}

	session, err := h.app.SessionService.Create(
		c.Context(), SessionKindTreePlanting, application.ID, "")
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

func (h *TreePlantingHandler) logout(c *fiber.Ctx) error {
	session := c.Locals("session").(Session)
	if err := h.app.SessionService.Destroy(c.Context(), session.Token); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *TreePlantingHandler) me(c *fiber.Ctx) error {
	session := c.Locals("session").(Session)

	application, err := h.app.TreePlantingRepo.GetByID(c.Context(), session.SubjectID)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "organization": application})
}

func (h *TreePlantingHandler) list(c *fiber.Ctx) error {
	applications, err := h.controller.GetAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "applications": applications})
}

func (h *TreePlantingHandler) transition(c *fiber.Ctx) error {
	var request struct {
		Status RegistrationStatus `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse status update")
	}

	application, err := h.controller.Transition(c.Context(), c.Params("id"), request.Status)
	if err != nil {
		if errors.Is(err, treePlantingController.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "invalid status transition"})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}
