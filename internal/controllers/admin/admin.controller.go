package adminController

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"envportal/config"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when a non-super admin attempts a privileged
	// operation.
	ErrForbidden = errors.New("insufficient role")

	ErrInvalidRequest = errors.New("invalid admin request")
)

type AdminController struct {
	adminRepo  repositories.AdminRepository
	bcryptCost int
	log        logger.Logger
}

func New(adminRepo repositories.AdminRepository, config config.Config) *AdminController {
	cost := config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AdminController{
		adminRepo:  adminRepo,
		bcryptCost: cost,
		log:        logger.New("AdminController"),
	}
}

// Login verifies credentials for an active admin and stamps last login.
func (c *AdminController) Login(ctx context.Context, email, password string) (*AdminUser, error) {
	log := c.log.Function("Login")

	admin, err := c.adminRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.Active {
		log.Warn("login attempt on deactivated admin", "id", admin.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := c.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Warn("failed to stamp last login", "id", admin.ID, "error", err)
	}
	admin.LastLoginAt = &now

	return admin, nil
}

// CreateAdmin provisions a new admin account. Only super admins may call it.
func (c *AdminController) CreateAdmin(ctx context.Context, actorRole AdminRole, req CreateAdminRequest) (*AdminUser, error) {
	log := c.log.Function("CreateAdmin")

	if actorRole != RoleSuperAdmin {
		log.Warn("create admin denied", "actorRole", actorRole)
		return nil, ErrForbidden
	}

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" ||
		utf8.RuneCountInString(req.Password) < 6 || !req.Role.Valid() {
		return nil, ErrInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), c.bcryptCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	admin := &AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
		PasswordHash: string(hash),
		Active:       true,
	}

	if err := c.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (c *AdminController) ListAdmins(ctx context.Context, actorRole AdminRole) ([]*AdminUser, error) {
	if actorRole != RoleSuperAdmin {
		return nil, ErrForbidden
	}
	return c.adminRepo.GetAll(ctx)
}

func (c *AdminController) SetActive(ctx context.Context, actorRole AdminRole, id string, active bool) error {
	if actorRole != RoleSuperAdmin {
		return ErrForbidden
	}
	return c.adminRepo.SetActive(ctx, id, active)
}
