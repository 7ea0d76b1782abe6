package handlers

import (
	"errors"

	"envportal/internal/app"
	contentController "envportal/internal/controllers/content"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	Handler
	controller contentController.ContentController
	app        app.App
}

func NewContentHandler(app app.App, router fiber.Router) *ContentHandler {
	log := logger.New("handlers").File("content_handler")
	return &ContentHandler{
		controller: *app.ContentController,
		app:        app,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ContentHandler) Register() {
	h.router.Get("/banners", h.publicBanners)
	h.router.Get("/pages/:slug", h.publicPage)

	admin := h.router.Group("/admin/content",
		h.middleware.RequireAdmin(RoleSuperAdmin, RoleContentAdmin))
	admin.Post("/banners", h.createBanner)
	admin.Get("/banners", h.listBanners)
	admin.Put("/banners/:id", h.updateBanner)
	admin.Delete("/banners/:id", h.deleteBanner)

	admin.Post("/pages", h.createPage)
	admin.Get("/pages", h.listPages)
	admin.Put("/pages/:id", h.updatePage)
	admin.Delete("/pages/:id", h.deletePage)
}

func (h *ContentHandler) publicBanners(c *fiber.Ctx) error {
	banners, err := h.controller.ListBanners(c.Context(), true)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "banners": banners})
}

func (h *ContentHandler) publicPage(c *fiber.Ctx) error {
	page, err := h.controller.GetPage(c.Context(), c.Params("slug"), false)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "page": page})
}

func (h *ContentHandler) createBanner(c *fiber.Ctx) error {
	log := h.log.Function("createBanner")

	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "banner image is required")
	}
	data, err := readFormFile(fh)
	if err != nil {
		log.Er("failed to read banner image", err)
		return badRequest(c, "failed to read banner image")
	}

	position := c.QueryInt("position", 0)

	banner, err := h.controller.CreateBanner(c.Context(),
		c.FormValue("title"), c.FormValue("linkUrl"), position, fh.Filename, data)
	if err != nil {
		if errors.Is(err, contentController.ErrInvalidContent) {
			return badRequest(c, "banner title and image are required")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "banner": banner})
}

func (h *ContentHandler) listBanners(c *fiber.Ctx) error {
	banners, err := h.controller.ListBanners(c.Context(), false)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "banners": banners})
}

func (h *ContentHandler) updateBanner(c *fiber.Ctx) error {
	var banner Banner
	if err := c.BodyParser(&banner); err != nil {
		return badRequest(c, "failed to parse banner")
	}
	banner.ID = c.Params("id")

	if err := h.controller.UpdateBanner(c.Context(), &banner); err != nil {
		if errors.Is(err, contentController.ErrInvalidContent) {
			return badRequest(c, "banner title and image are required")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "banner": banner})
}

func (h *ContentHandler) deleteBanner(c *fiber.Ctx) error {
	if err := h.controller.DeleteBanner(c.Context(), c.Params("id")); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *ContentHandler) createPage(c *fiber.Ctx) error {
	var page ContentPage
	if err := c.BodyParser(&page); err != nil {
		return badRequest(c, "failed to parse page")
	}

	if err := h.controller.CreatePage(c.Context(), &page); err != nil {
		if errors.Is(err, contentController.ErrInvalidContent) {
			return badRequest(c, "page slug and title are required")
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "page": page})
}

func (h *ContentHandler) listPages(c *fiber.Ctx) error {
	pages, err := h.controller.ListPages(c.Context())
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "pages": pages})
}

func (h *ContentHandler) updatePage(c *fiber.Ctx) error {
	var page ContentPage
	if err := c.BodyParser(&page); err != nil {
		return badRequest(c, "failed to parse page")
	}
	page.ID = c.Params("id")

	if err := h.controller.UpdatePage(c.Context(), &page); err != nil {
		if errors.Is(err, contentController.ErrInvalidContent) {
			return badRequest(c, "page title is required")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "page": page})
}

func (h *ContentHandler) deletePage(c *fiber.Ctx) error {
	if err := h.controller.DeletePage(c.Context(), c.Params("id")); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
