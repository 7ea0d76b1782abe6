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

type ReportRepository interface {
	Create(ctx context.Context, report *EnvironmentalReport) error
	GetByID(ctx context.Context, id string) (*EnvironmentalReport, error)
	GetAll(ctx context.Context) ([]*EnvironmentalReport, error)
	Update(ctx context.Context, report *EnvironmentalReport) error
}

type reportRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReport(db database.DB) ReportRepository {
	return &reportRepository{
		db:  db,
		log: logger.New("reportRepository"),
	}
}

func (r *reportRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *reportRepository) Create(ctx context.Context, report *EnvironmentalReport) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(report).Error; err != nil {
		return log.Err("failed to create environmental report", err)
	}

	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*EnvironmentalReport, error) {
	log := r.log.Function("GetByID")

	var report EnvironmentalReport
	if err := r.getDB(ctx).First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get environmental report", err, "id", id)
	}

	return &report, nil
}

func (r *reportRepository) GetAll(ctx context.Context) ([]*EnvironmentalReport, error) {
	log := r.log.Function("GetAll")

	var reports []*EnvironmentalReport
	if err := r.getDB(ctx).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, log.Err("failed to get all environmental reports", err)
	}

	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *EnvironmentalReport) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(report).Error; err != nil {
		return log.Err("failed to update environmental report", err, "id", report.ID)
	}

	return nil
}
