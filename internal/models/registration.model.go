package models

import "time"

type ActorType string

const (
	ActorTypeState    ActorType = "state"
	ActorTypeNonState ActorType = "non_state"
)

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// CanTransitionTo enforces the one-directional lifecycle: a pending
// application may be approved or rejected, terminal states never reopen.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	if s != RegistrationStatusPending {
		return false
	}
	return next == RegistrationStatusApproved || next == RegistrationStatusRejected
}

// RegistrationApplication is a climate-actor registry entry. Contact email
// and phone carry unique indexes; the resulting constraint violation is the
// single source of truth for "already registered".
type RegistrationApplication struct {
	BaseUUIDModel
	ActorType        ActorType          `gorm:"type:varchar(16);not null"          json:"actorType"`
	OrganizationName string             `gorm:"type:varchar(255);not null"         json:"organizationName"`
	FocusAreas       []string           `gorm:"type:text;serializer:json"          json:"focusAreas"`
	OperatingRegions []string           `gorm:"type:text;serializer:json"          json:"operatingRegions"`
	YearEstablished  *int               `gorm:"type:int"                           json:"yearEstablished,omitempty"`
	Description      string             `gorm:"type:text"                          json:"description"`
	ContactName      string             `gorm:"type:varchar(255);not null"         json:"contactName"`
	ContactEmail     string             `gorm:"type:varchar(255);not null;uniqueIndex" json:"contactEmail"`
	ContactPhone     string             `gorm:"type:varchar(32);not null;uniqueIndex"  json:"contactPhone"`
	Website          *string            `gorm:"type:varchar(255)"                  json:"website,omitempty"`
	LogoURL          *string            `gorm:"type:varchar(512)"                  json:"logoUrl,omitempty"`
	CredentialHash   string             `gorm:"type:varchar(128);not null"         json:"-"`
	Status           RegistrationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	ApprovedAt       *time.Time         `json:"approvedAt,omitempty"`
}

type OrganizationLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
