package airQualityController

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"
)

var ErrInvalidReading = errors.New("AQI reading out of range")

type AirQualityController struct {
	airQualityRepo repositories.AirQualityRepository
	exportService  *services.ExportService
	log            logger.Logger
}

func New(
	airQualityRepo repositories.AirQualityRepository,
	exportService *services.ExportService,
) *AirQualityController {
	return &AirQualityController{
		airQualityRepo: airQualityRepo,
		exportService:  exportService,
		log:            logger.New("AirQualityController"),
	}
}

// CreateStation registers a monitoring station. The category is never
// accepted from the caller; it is derived from the AQI value.
func (c *AirQualityController) CreateStation(
	ctx context.Context,
	location string,
	aqi int,
	pollutants *Pollutants,
) (*AirQualityStation, error) {
	log := c.log.Function("CreateStation")

	if aqi < 0 || aqi > MaxAQI {
		return nil, ErrInvalidReading
	}
	if strings.TrimSpace(location) == "" {
		return nil, log.ErrMsg("station location is required")
	}

	station := &AirQualityStation{
		Location:    strings.TrimSpace(location),
		AQI:         aqi,
		Category:    CategoryForAQI(aqi),
		Pollutants:  pollutants,
		Status:      StationStatusActive,
		LastUpdated: time.Now(),
	}

	if err := c.airQualityRepo.Create(ctx, station); err != nil {
		return nil, err
	}

	return station, nil
}

// UpdateReading records a new AQI value and rederives the category.
func (c *AirQualityController) UpdateReading(
	ctx context.Context,
	id string,
	aqi int,
	pollutants *Pollutants,
) (*AirQualityStation, error) {
	if aqi < 0 || aqi > MaxAQI {
		return nil, ErrInvalidReading
	}

	station, err := c.airQualityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	station.AQI = aqi
	station.Category = CategoryForAQI(aqi)
	if pollutants != nil {
		station.Pollutants = pollutants
	}
	station.LastUpdated = time.Now()

	if err := c.airQualityRepo.Update(ctx, station); err != nil {
		return nil, err
	}

	return station, nil
}

func (c *AirQualityController) SetStatus(ctx context.Context, id string, status StationStatus) (*AirQualityStation, error) {
	log := c.log.Function("SetStatus")

	switch status {
	case StationStatusActive, StationStatusMaintenance, StationStatusOffline:
	default:
		return nil, log.Error("unknown station status", "status", status)
	}

	station, err := c.airQualityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	station.Status = status
	if err := c.airQualityRepo.Update(ctx, station); err != nil {
		return nil, err
	}

	return station, nil
}

func (c *AirQualityController) Filter(
	stations []*AirQualityStation,
	query string,
	status StationStatus,
) []*AirQualityStation {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*AirQualityStation, 0, len(stations))
	for _, station := range stations {
		if status != "" && station.Status != status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(station.Location), query) {
			continue
		}
		filtered = append(filtered, station)
	}
	return filtered
}

func (c *AirQualityController) ExportCSV(stations []*AirQualityStation) (string, error) {
	headers := []string{"Location", "AQI", "Category", "Status", "Last Updated"}

	rows := make([][]string, 0, len(stations))
	for _, station := range stations {
		rows = append(rows, []string{
			station.Location,
			strconv.Itoa(station.AQI),
			string(station.Category),
			string(station.Status),
			station.LastUpdated.Format(time.RFC3339),
		})
	}

	return c.exportService.BuildCSV(headers, rows)
}
