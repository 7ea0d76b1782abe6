package handlers

import (
	"errors"

	"envportal/internal/app"
	adminController "envportal/internal/controllers/admin"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Handler
	controller adminController.AdminController
	app        app.App
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		controller: *app.AdminController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin")
	admin.Post("/login", h.login)
	admin.Post("/logout", h.middleware.RequireAdmin(), h.logout)
	admin.Get("/me", h.middleware.RequireAdmin(), h.me)

	users := admin.Group("/users", h.middleware.RequireAdmin(RoleSuperAdmin))
	users.Post("/", h.createAdmin)
	users.Get("/", h.listAdmins)
	users.Patch("/:id/active", h.setActive)
}

func (h *AdminHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request AdminLoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse login request", err)
		return badRequest(c, "failed to parse login request")
	}

	admin, err := h.controller.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, adminController.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid credentials"})
		}
		return serverError(c, err)
	}

	session, err := h.app.SessionService.Create(
		c.Context(), SessionKindAdmin, admin.ID, admin.Role)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "success",
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
		"admin":     admin,
	})
}

func (h *AdminHandler) logout(c *fiber.Ctx) error {
	session := c.Locals("session").(Session)
	if err := h.app.SessionService.Destroy(c.Context(), session.Token); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *AdminHandler) me(c *fiber.Ctx) error {
	admin := c.Locals("admin").(AdminUser)
	return c.JSON(fiber.Map{"message": "success", "admin": admin})
}

func (h *AdminHandler) createAdmin(c *fiber.Ctx) error {
	log := h.log.Function("createAdmin")

	var request CreateAdminRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse create admin request", err)
		return badRequest(c, "failed to parse create admin request")
	}

	actor := c.Locals("admin").(AdminUser)

	admin, err := h.controller.CreateAdmin(c.Context(), actor.Role, request)
	switch {
	case errors.Is(err, adminController.ErrForbidden):
		return c.Status(fiber.StatusForbidden).
			JSON(fiber.Map{"message": "insufficient role"})
	case errors.Is(err, adminController.ErrInvalidRequest):
		return badRequest(c, "invalid admin request")
	case errors.Is(err, repositories.ErrDuplicateAdmin):
		return c.Status(fiber.StatusConflict).
			JSON(fiber.Map{"message": "admin email already exists"})
	case err != nil:
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "admin": admin})
}

func (h *AdminHandler) listAdmins(c *fiber.Ctx) error {
	actor := c.Locals("admin").(AdminUser)

	admins, err := h.controller.ListAdmins(c.Context(), actor.Role)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "admins": admins})
}

func (h *AdminHandler) setActive(c *fiber.Ctx) error {
	var request struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "failed to parse active flag")
	}

	actor := c.Locals("admin").(AdminUser)

	if err := h.controller.SetActive(c.Context(), actor.Role, c.Params("id"), request.Active); err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}
