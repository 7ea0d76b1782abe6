package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"envportal/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// alreadyRegistered is the informational (non-error) response for duplicate
// contact details: the user is told to log in instead.
func alreadyRegistered(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":           "already_registered",
		"alreadyRegistered": true,
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).
		JSON(fiber.Map{"message": "not found"})
}

// serverError surfaces the backend error message verbatim, matching the
// toast behavior of the public site.
func serverError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c)
	}
	return c.Status(fiber.StatusInternalServerError).
		JSON(fiber.Map{"message": "error", "error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(fiber.Map{"message": msg})
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
