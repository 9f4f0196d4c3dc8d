package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role is set at registration and never changes afterwards.
const (
	RoleClinician  = "clinician"
	RoleRecruiter  = "recruiter"
	RoleLeadership = "leadership"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleClinician || r == RoleRecruiter || r == RoleLeadership
}

type User struct {
	gorm.Model
	Username        string     `gorm:"unique;not null" json:"username"`
	Email           string     `gorm:"unique;not null" json:"email"`
	Name            string     `json:"name"`
	Role            string     `gorm:"not null" json:"role"`
	Password        string     `gorm:"not null" json:"-"`
	RefreshToken    string     `gorm:"column:refresh_token" json:"-"`
	RefreshIssuedAt *time.Time `gorm:"column:refresh_issued_at" json:"-"`
	LastLogoutAt    *time.Time `gorm:"column:last_logout_at" json:"-"`
}
