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

type RecruitmentRepository interface {
	Create(ctx context.Context, app *RecruitmentApplication) error
	GetByID(ctx context.Context, id string) (*RecruitmentApplication, error)
	GetByReference(ctx context.Context, ref string) (*RecruitmentApplication, error)
	GetAll(ctx context.Context) ([]*RecruitmentApplication, error)
	Update(ctx context.Context, app *RecruitmentApplication) error
}

type recruitmentRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRecruitment(db database.DB) RecruitmentRepository {
	return &recruitmentRepository{
		db:  db,
		log: logger.New("recruitmentRepository"),
	}
}

func (r *recruitmentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *recruitmentRepository) Create(ctx context.Context, app *RecruitmentApplication) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return log.Err("reference number collision", err, "reference", app.ReferenceNumber)
		}
		return log.Err("failed to create recruitment application", err)
	}

	return nil
}

func (r *recruitmentRepository) GetByID(ctx context.Context, id string) (*RecruitmentApplication, error) {
	log := r.log.Function("GetByID")

	var app RecruitmentApplication
	if err := r.getDB(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get recruitment application", err, "id", id)
	}

	return &app, nil
}

func (r *recruitmentRepository) GetByReference(ctx context.Context, ref string) (*RecruitmentApplication, error) {
	log := r.log.Function("GetByReference")

	var app RecruitmentApplication
	if err := r.getDB(ctx).First(&app, "reference_number = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get recruitment application by reference", err, "reference", ref)
	}

	return &app, nil
}

func (r *recruitmentRepository) GetAll(ctx context.Context) ([]*RecruitmentApplication, error) {
	log := r.log.Function("GetAll")

	var apps []*RecruitmentApplication
	if err := r.getDB(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, log.Err("failed to get all recruitment applications", err)
	}

	return apps, nil
}

func (r *recruitmentRepository) Update(ctx context.Context, app *RecruitmentApplication) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(app).Error; err != nil {
		return log.Err("failed to update recruitment application", err, "id", app.ID)
	}

	return nil
}
