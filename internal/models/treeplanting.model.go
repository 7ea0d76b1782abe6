package models

import "time"

// TreePlantingApplication is a five-million-trees campaign pledge. Shares
// the registry's one-directional pending → approved | rejected lifecycle.
type TreePlantingApplication struct {
	BaseUUIDModel
	OrganizationName string             `gorm:"type:varchar(255);not null"             json:"organizationName"`
	OrganizationType string             `gorm:"type:varchar(64);not null"              json:"organizationType"`
	TargetRegions    []string           `gorm:"type:text;serializer:json"              json:"targetRegions"`
	TreesPledged     int                `gorm:"type:int;not null"                      json:"treesPledged"`
	PlantingPlan     string             `gorm:"type:text"                              json:"plantingPlan"`
	ContactName      string             `gorm:"type:varchar(255);not null"             json:"contactName"`
	ContactEmail     string             `gorm:"type:varchar(255);not null;uniqueIndex" json:"contactEmail"`
	ContactPhone     string             `gorm:"type:varchar(32);not null"              json:"contactPhone"`
	CredentialHash   string             `gorm:"type:varchar(128);not null"             json:"-"`
	Status           RegistrationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	ApprovedAt       *time.Time         `json:"approvedAt,omitempty"`
}
