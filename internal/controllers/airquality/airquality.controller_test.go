package airQualityController

import (
	"context"
	"testing"

	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAirQualityRepo struct {
	stations map[string]*AirQualityStation
}

func newFakeAirQualityRepo() *fakeAirQualityRepo {
	return &fakeAirQualityRepo{stations: make(map[string]*AirQualityStation)}
}

func (f *fakeAirQualityRepo) Create(ctx context.Context, station *AirQualityStation) error {
	if station.ID == "" {
		station.ID = "station-" + station.Location
	}
	f.stations[station.ID] = station
	return nil
}

func (f *fakeAirQualityRepo) GetByID(ctx context.Context, id string) (*AirQualityStation, error) {
	station, ok := f.stations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return station, nil
}

func (f *fakeAirQualityRepo) GetAll(ctx context.Context) ([]*AirQualityStation, error) {
	stations := make([]*AirQualityStation, 0, len(f.stations))
	for _, station := range f.stations {
		stations = append(stations, station)
	}
	return stations, nil
}

func (f *fakeAirQualityRepo) Update(ctx context.Context, station *AirQualityStation) error {
	f.stations[station.ID] = station
	return nil
}

func (f *fakeAirQualityRepo) Delete(ctx context.Context, id string) error {
	delete(f.stations, id)
	return nil
}

func newTestController(repo repositories.AirQualityRepository) *AirQualityController {
	return &AirQualityController{
		airQualityRepo: repo,
		exportService:  services.NewExportService(),
		log:            logger.New("AirQualityController"),
	}
}

func TestAirQualityController_CreateStation(t *testing.T) {
	controller := newTestController(newFakeAirQualityRepo())

	station, err := controller.CreateStation(context.Background(), "  Abuja Central ", 117, nil)
	require.NoError(t, err)
	assert.Equal(t, "Abuja Central", station.Location)
	assert.Equal(t, 117, station.AQI)
	assert.Equal(t, AQIUnhealthySensitive, station.Category)
	assert.Equal(t, StationStatusActive, station.Status)
	assert.False(t, station.LastUpdated.IsZero())
}

func TestAirQualityController_CreateStation_InvalidReading(t *testing.T) {
	controller := newTestController(newFakeAirQualityRepo())

	_, err := controller.CreateStation(context.Background(), "Abuja Central", -1, nil)
	assert.ErrorIs(t, err, ErrInvalidReading)

	_, err = controller.CreateStation(context.Background(), "Abuja Central", MaxAQI+1, nil)
	assert.ErrorIs(t, err, ErrInvalidReading)
}

func TestAirQualityController_CreateStation_BlankLocation(t *testing.T) {
	controller := newTestController(newFakeAirQualityRepo())

	_, err := controller.CreateStation(context.Background(), "   ", 40, nil)
	assert.Error(t, err)
}

func TestAirQualityController_UpdateReading_RederivesCategory(t *testing.T) {
	repo := newFakeAirQualityRepo()
	controller := newTestController(repo)

	station, err := controller.CreateStation(context.Background(), "Lagos Ikeja", 42, nil)
	require.NoError(t, err)
	require.Equal(t, AQIGood, station.Category)

	updated, err := controller.UpdateReading(context.Background(), station.ID, 260, nil)
	require.NoError(t, err)
	assert.Equal(t, 260, updated.AQI)
	assert.Equal(t, AQIVeryUnhealthy, updated.Category)
}

func TestAirQualityController_UpdateReading_InvalidReading(t *testing.T) {
	repo := newFakeAirQualityRepo()
	controller := newTestController(repo)

	station, err := controller.CreateStation(context.Background(), "Lagos Ikeja", 42, nil)
	require.NoError(t, err)

	_, err = controller.UpdateReading(context.Background(), station.ID, 501, nil)
	assert.ErrorIs(t, err, ErrInvalidReading)
	assert.Equal(t, 42, repo.stations[station.ID].AQI)
}

func TestAirQualityController_SetStatus(t *testing.T) {
	repo := newFakeAirQualityRepo()
	controller := newTestController(repo)

	station, err := controller.CreateStation(context.Background(), "Port Harcourt", 163, nil)
	require.NoError(t, err)

	updated, err := controller.SetStatus(context.Background(), station.ID, StationStatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, StationStatusMaintenance, updated.Status)

	_, err = controller.SetStatus(context.Background(), station.ID, StationStatus("broken"))
	assert.Error(t, err)
}

func TestAirQualityController_Filter(t *testing.T) {
	one := &AirQualityStation{Location: "Abuja Central", Status: StationStatusActive}
	one.ID = "s1"
	two := &AirQualityStation{Location: "Lagos Ikeja", Status: StationStatusOffline}
	two.ID = "s2"

	controller := newTestController(newFakeAirQualityRepo())
	stations := []*AirQualityStation{one, two}

	filtered := controller.Filter(stations, "lagos", "")
	require.Len(t, filtered, 1)
	assert.Equal(t, "s2", filtered[0].ID)

	filtered = controller.Filter(stations, "", StationStatusActive)
	require.Len(t, filtered, 1)
	assert.Equal(t, "s1", filtered[0].ID)

	filtered = controller.Filter(stations, "lagos", StationStatusActive)
	assert.Empty(t, filtered)
}
