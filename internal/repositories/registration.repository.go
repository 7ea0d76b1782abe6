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

const REGISTRATION_CACHE_EXPIRY = 1 * time.Hour

type RegistrationRepository interface {
	Create(ctx context.Context, app *RegistrationApplication) error
	GetByID(ctx context.Context, id string) (*RegistrationApplication, error)
	GetByEmail(ctx context.Context, email string) (*RegistrationApplication, error)
	GetAll(ctx context.Context) ([]*RegistrationApplication, error)
	GetByStatus(ctx context.Context, status RegistrationStatus) ([]*RegistrationApplication, error)
	UpdateStatus(ctx context.Context, app *RegistrationApplication) error
	Delete(ctx context.Context, id string) error
}

type registrationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRegistration(db database.DB) RegistrationRepository {
	return &registrationRepository{
		db:  db,
		log: logger.New("registrationRepository"),
	}
}

func (r *registrationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// Create relies on the unique indexes over contact email and phone; a
// duplicate surfaces as ErrDuplicateContact. There is no pre-check query,
// so concurrent submissions cannot race past each other.
func (r *registrationRepository) Create(ctx context.Context, app *RegistrationApplication) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateContact
		}
		return log.Err("failed to create registration application", err, "organization", app.OrganizationName)
	}

	if err := r.addToCache(ctx, app); err != nil {
		log.Warn("failed to add registration to cache", "id", app.ID, "error", err)
	}

	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*RegistrationApplication, error) {
	log := r.log.Function("GetByID")

	var app RegistrationApplication
	found, err := database.NewCacheBuilder(r.db.Cache.Registration, id).
		WithContext(ctx).
		Get(&app)
	if err != nil {
		log.Warn("failed to read registration from cache", "id", id, "error", err)
	}
	if found {
		return &app, nil
	}

	if err := r.getDB(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get registration application", err, "id", id)
	}

	if err := r.addToCache(ctx, &app); err != nil {
		log.Warn("failed to add registration to cache", "id", id, "error", err)
	}

	return &app, nil
}

func (r *registrationRepository) GetByEmail(ctx context.Context, email string) (*RegistrationApplication, error) {
	log := r.log.Function("GetByEmail")

	var app RegistrationApplication
	if err := r.getDB(ctx).First(&app, "contact_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get registration by email", err)
	}

	return &app, nil
}

func (r *registrationRepository) GetAll(ctx context.Context) ([]*RegistrationApplication, error) {
	log := r.log.Function("GetAll")

	var apps []*RegistrationApplication
	if err := r.getDB(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, log.Err("failed to get all registration applications", err)
	}

	return apps, nil
}

func (r *registrationRepository) GetByStatus(ctx context.Context, status RegistrationStatus) ([]*RegistrationApplication, error) {
	log := r.log.Function("GetByStatus")

	var apps []*RegistrationApplication
	if err := r.getDB(ctx).Where("status = ?", status).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, log.Err("failed to get registration applications by status", err, "status", status)
	}

	return apps, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, app *RegistrationApplication) error {
	log := r.log.Function("UpdateStatus")

	if err := r.getDB(ctx).Model(app).
		Select("status", "approved_at").
		Updates(map[string]any{"status": app.Status, "approved_at": app.ApprovedAt}).Error; err != nil {
		return log.Err("failed to update registration status", err, "id", app.ID, "status", app.Status)
	}

	if err := r.addToCache(ctx, app); err != nil {
		log.Warn("failed to update registration in cache", "id", app.ID, "error", err)
	}

	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&RegistrationApplication{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete registration application", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Registration, id).Delete(); err != nil {
		log.Warn("failed to remove registration from cache", "id", id, "error", err)
	}

	return nil
}

func (r *registrationRepository) addToCache(ctx context.Context, app *RegistrationApplication) error {
	return database.NewCacheBuilder(r.db.Cache.Registration, app.ID).
		WithStruct(app).
		WithTTL(REGISTRATION_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
