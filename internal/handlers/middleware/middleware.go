package middleware

import (
	"strings"

	"envportal/config"
	"envportal/internal/database"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	sessionService *services.SessionService
	adminRepo      repositories.AdminRepository
	config         config.Config
	log            logger.Logger
}

func New(
	db database.DB,
	sessionService *services.SessionService,
	adminRepo repositories.AdminRepository,
	config config.Config,
) Middleware {
	return Middleware{
		sessionService: sessionService,
		adminRepo:      adminRepo,
		config:         config,
		log:            logger.New("middleware"),
	}
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAdmin authenticates the bearer session and checks the admin's role
// against the allowed set. An empty set means any admin role passes.
func (m Middleware) RequireAdmin(roles ...AdminRole) fiber.Handler {
	log := m.log.Function("RequireAdmin")

	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "missing bearer token"})
		}

		session, found, err := m.sessionService.Get(c.Context(), token)
		if err != nil || !found || session.Kind != SessionKindAdmin {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid or expired session"})
		}

		admin, err := m.adminRepo.GetByID(c.Context(), session.SubjectID)
		if err != nil || !admin.Active {
			log.Warn("session for missing or deactivated admin", "subjectID", session.SubjectID)
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid or expired session"})
		}

		if len(roles) > 0 && !roleAllowed(admin.Role, roles) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"message": "insufficient role"})
		}

		c.Locals("admin", *admin)
		c.Locals("session", session)
		return c.Next()
	}
}

// RequireSession authenticates any of the public login flows (organization,
// tree-planting organization).
func (m Middleware) RequireSession(kinds ...SessionKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "missing bearer token"})
		}

		session, found, err := m.sessionService.Get(c.Context(), token)
		if err != nil || !found {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid or expired session"})
		}

		if len(kinds) > 0 && !kindAllowed(session.Kind, kinds) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"message": "wrong session kind"})
		}

		c.Locals("session", session)
		return c.Next()
	}
}

func roleAllowed(role AdminRole, allowed []AdminRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func kindAllowed(kind SessionKind, allowed []SessionKind) bool {
	for _, k := range allowed {
		if kind == k {
			return true
		}
	}
	return false
}
