package repositories

import (
	"context"
	"errors"

	"envportal/internal/database"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/services"

	"gorm.io/gorm"
)

type TreePlantingRepository interface {
	Create(ctx context.Context, app *TreePlantingApplication) error
	GetByID(ctx context.Context, id string) (*TreePlantingApplication, error)
	GetByEmail(ctx context.Context, email string) (*TreePlantingApplication, error)
	GetAll(ctx context.Context) ([]*TreePlantingApplication, error)
	UpdateStatus(ctx context.Context, app *TreePlantingApplication) error
}

type treePlantingRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTreePlanting(db database.DB) TreePlantingRepository {
	return &treePlantingRepository{
		db:  db,
		log: logger.New("treePlantingRepository"),
	}
}

func (r *treePlantingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *treePlantingRepository) Create(ctx context.Context, app *TreePlantingApplication) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateContact
		}
		return log.Err("failed to create tree planting application", err, "organization", app.OrganizationName)
	}

	return nil
}

func (r *treePlantingRepository) GetByID(ctx context.Context, id string) (*TreePlantingApplication, error) {
	log := r.log.Function("GetByID")

	var app TreePlantingApplication
	if err := r.getDB(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get tree planting application", err, "id", id)
	}

	return &app, nil
}

func (r *treePlantingRepository) GetByEmail(ctx context.Context, email string) (*TreePlantingApplication, error) {
	log := r.log.Function("GetByEmail")

	var app TreePlantingApplication
	if err := r.getDB(ctx).First(&app, "contact_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get tree planting application by email", err)
	}

	return &app, nil
}

func (r *treePlantingRepository) GetAll(ctx context.Context) ([]*TreePlantingApplication, error) {
	log := r.log.Function("GetAll")

	var apps []*TreePlantingApplication
	if err := r.getDB(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, log.Err("failed to get all tree planting applications", err)
	}

	return apps, nil
}

func (r *treePlantingRepository) UpdateStatus(ctx context.Context, app *TreePlantingApplication) error {
	log := r.log.Function("UpdateStatus")

	if err := r.getDB(ctx).Model(app).
		Select("status", "approved_at").
		Updates(map[string]any{"status": app.Status, "approved_at": app.ApprovedAt}).Error; err != nil {
		return log.Err("failed to update tree planting status", err, "id", app.ID, "status", app.Status)
	}

	return nil
}
