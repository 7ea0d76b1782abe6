package models

import "time"

type AQICategory string

const (
	AQIGood                AQICategory = "good"
	AQIModerate            AQICategory = "moderate"
	AQIUnhealthySensitive  AQICategory = "unhealthy_sensitive"
	AQIUnhealthy           AQICategory = "unhealthy"
	AQIVeryUnhealthy       AQICategory = "very_unhealthy"
	AQIHazardous           AQICategory = "hazardous"
)

// CategoryForAQI maps an AQI value to its health band using the fixed EPA
// breakpoints. Pure and total: negative values clamp to Good, anything above
// 300 is Hazardous.
func CategoryForAQI(value int) AQICategory {
	switch {
	case value <= 50:
		return AQIGood
	case value <= 100:
		return AQIModerate
	case value <= 150:
		return AQIUnhealthySensitive
	case value <= 200:
		return AQIUnhealthy
	case value <= 300:
		return AQIVeryUnhealthy
	default:
		return AQIHazardous
	}
}

// Severity gives the band's rank for ordering checks.
func (c AQICategory) Severity() int {
	switch c {
	case AQIGood:
		return 0
	case AQIModerate:
		return 1
	case AQIUnhealthySensitive:
		return 2
	case AQIUnhealthy:
		return 3
	case AQIVeryUnhealthy:
		return 4
	case AQIHazardous:
		return 5
	}
	return -1
}

type StationStatus string

const (
	StationStatusActive      StationStatus = "active"
	StationStatusMaintenance StationStatus = "maintenance"
	StationStatusOffline     StationStatus = "offline"
)

// Pollutants carries optional sub-readings in µg/m³ (ppb for ozone).
type Pollutants struct {
	PM25 *float64 `json:"pm25,omitempty"`
	PM10 *float64 `json:"pm10,omitempty"`
	O3   *float64 `json:"o3,omitempty"`
	NO2  *float64 `json:"no2,omitempty"`
}

type AirQualityStation struct {
	BaseUUIDModel
	Location    string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"location"`
	AQI         int           `gorm:"type:int;not null"                      json:"aqi"`
	Category    AQICategory   `gorm:"type:varchar(32);not null"              json:"category"`
	Pollutants  *Pollutants   `gorm:"type:text;serializer:json"              json:"pollutants,omitempty"`
	Status      StationStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// MaxAQI bounds accepted readings.
const MaxAQI = 500
