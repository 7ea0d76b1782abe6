package repositories

import (
	"context"
	"errors"
	"time"

	"envportal/internal/database"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/services"

	"gorm.io/gorm"
)

// ErrDuplicateAdmin is returned when an admin email is already taken.
var ErrDuplicateAdmin = errors.New("admin email already exists")

type AdminRepository interface {
	Create(ctx context.Context, admin *AdminUser) error
	GetByID(ctx context.Context, id string) (*AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetAll(ctx context.Context) ([]*AdminUser, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	SetActive(ctx context.Context, id string, active bool) error
}

type adminRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAdmin(db database.DB) AdminRepository {
	return &adminRepository{
		db:  db,
		log: logger.New("adminRepository"),
	}
}

func (r *adminRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *adminRepository) Create(ctx context.Context, admin *AdminUser) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAdmin
		}
		return log.Err("failed to create admin user", err, "email", admin.Email)
	}

	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*AdminUser, error) {
	log := r.log.Function("GetByID")

	var admin AdminUser
	if err := r.getDB(ctx).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get admin user", err, "id", id)
	}

	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	log := r.log.Function("GetByEmail")

	var admin AdminUser
	if err := r.getDB(ctx).First(&admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get admin user by email", err)
	}

	return &admin, nil
}

func (r *adminRepository) GetAll(ctx context.Context) ([]*AdminUser, error) {
	log := r.log.Function("GetAll")

	var admins []*AdminUser
	if err := r.getDB(ctx).Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, log.Err("failed to get all admin users", err)
	}

	return admins, nil
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	log := r.log.Function("UpdateLastLogin")

	if err := r.getDB(ctx).Model(&AdminUser{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error; err != nil {
		return log.Err("failed to update last login", err, "id", id)
	}

	return nil
}

func (r *adminRepository) SetActive(ctx context.Context, id string, active bool) error {
	log := r.log.Function("SetActive")

	if err := r.getDB(ctx).Model(&AdminUser{}).
		Where("id = ?", id).
		Update("active", active).Error; err != nil {
		return log.Err("failed to update active flag", err, "id", id)
	}

	return nil
}
