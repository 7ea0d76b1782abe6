package models

import "time"

type AdminRole string

const (
	RoleSuperAdmin   AdminRole = "super_admin"
	RoleContentAdmin AdminRole = "content_admin"
	RoleReportsAdmin AdminRole = "reports_admin"
)

func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleContentAdmin, RoleReportsAdmin:
		return true
	}
	return false
}

type AdminUser struct {
	BaseUUIDModel
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name         string     `gorm:"type:varchar(255);not null"             json:"name"`
	Role         AdminRole  `gorm:"type:varchar(32);not null"              json:"role"`
	PasswordHash string     `gorm:"type:varchar(128);not null"             json:"-"`
	Active       bool       `gorm:"not null;default:true"                  json:"active"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdminRequest struct {
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     AdminRole `json:"role"`
	Password string    `json:"password"`
}
