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

type AirQualityRepository interface {
	Create(ctx context.Context, station *AirQualityStation) error
	GetByID(ctx context.Context, id string) (*AirQualityStation, error)
	GetAll(ctx context.Context) ([]*AirQualityStation, error)
	Update(ctx context.Context, station *AirQualityStation) error
	Delete(ctx context.Context, id string) error
}

type airQualityRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAirQuality(db database.DB) AirQualityRepository {
	return &airQualityRepository{
		db:  db,
		log: logger.New("airQualityRepository"),
	}
}

func (r *airQualityRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *airQualityRepository) Create(ctx context.Context, station *AirQualityStation) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(station).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return log.Error("station location already exists", "location", station.Location)
		}
		return log.Err("failed to create air quality station", err, "location", station.Location)
	}

	return nil
}

func (r *airQualityRepository) GetByID(ctx context.Context, id string) (*AirQualityStation, error) {
	log := r.log.Function("GetByID")

	var station AirQualityStation
	if err := r.getDB(ctx).First(&station, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get air quality station", err, "id", id)
	}

	return &station, nil
}

func (r *airQualityRepository) GetAll(ctx context.Context) ([]*AirQualityStation, error) {
	log := r.log.Function("GetAll")

	var stations []*AirQualityStation
	if err := r.getDB(ctx).Order("created_at DESC").Find(&stations).Error; err != nil {
		return nil, log.Err("failed to get all air quality stations", err)
	}

	return stations, nil
}

func (r *airQualityRepository) Update(ctx context.Context, station *AirQualityStation) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(station).Error; err != nil {
		return log.Err("failed to update air quality station", err, "id", station.ID)
	}

	return nil
}

func (r *airQualityRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&AirQualityStation{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete air quality station", err, "id", id)
	}

	return nil
}
