package seed

import (
	"time"

	"envportal/config"
	"envportal/internal/logger"
	. "envportal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed provisions the initial super admin plus development fixtures. Safe to
// run repeatedly: existing records are left alone.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	cost := config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), cost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	admins := []AdminUser{
		{
			Email:        "super@ministry.example",
			Name:         "Portal Superadmin",
			Role:         RoleSuperAdmin,
			PasswordHash: string(hash),
			Active:       true,
		}, {
			Email:        "content@ministry.example",
			Name:         "Content Desk",
			Role:         RoleContentAdmin,
			PasswordHash: string(hash),
			Active:       true,
		},
	}

	for _, admin := range admins {
		var existing AdminUser
		if err := db.First(&existing, "email = ?", admin.Email).Error; err == nil {
			continue
		}
		log.Info("Seeding admin", "email", admin.Email)
		if err := db.Create(&admin).Error; err != nil {
			log.Er("failed to create admin", err, "email", admin.Email)
		}
	}

	stations := []AirQualityStation{
		{Location: "Abuja Central", AQI: 42, Category: CategoryForAQI(42), Status: StationStatusActive, LastUpdated: time.Now()},
		{Location: "Lagos Ikeja", AQI: 117, Category: CategoryForAQI(117), Status: StationStatusActive, LastUpdated: time.Now()},
		{Location: "Port Harcourt", AQI: 163, Category: CategoryForAQI(163), Status: StationStatusMaintenance, LastUpdated: time.Now()},
	}

	for _, station := range stations {
		var existing AirQualityStation
		if err := db.First(&existing, "location = ?", station.Location).Error; err == nil {
			continue
		}
		log.Info("Seeding station", "location", station.Location)
		if err := db.Create(&station).Error; err != nil {
			log.Er("failed to create station", err, "location", station.Location)
		}
	}

	pages := []ContentPage{
		{Slug: "about", Title: "About the Ministry", Body: "The Ministry of Environment...", Published: true},
		{Slug: "privacy-policy", Title: "Privacy Policy", Body: "How we handle your data...", Published: true},
	}

	for _, page := range pages {
		var existing ContentPage
		if err := db.First(&existing, "slug = ?", page.Slug).Error; err == nil {
			continue
		}
		log.Info("Seeding page", "slug", page.Slug)
		if err := db.Create(&page).Error; err != nil {
			log.Er("failed to create page", err, "slug", page.Slug)
		}
	}

	return nil
}
