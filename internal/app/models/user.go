package models

import (
	"time"
)

// Role is the application-level role of a user.
type Role string

const (
	RoleStudent     Role = "student"
	RoleTeacher     Role = "teacher"
	RoleSystemAdmin Role = "systemadmin"
)

// NormalizeRole maps an unknown or empty role string to the least-privileged
// role. Authorization decisions must never widen because of a malformed role.
func NormalizeRole(r string) Role {
	switch Role(r) {
	case RoleStudent, RoleTeacher, RoleSystemAdmin:
		return Role(r)
	default:
		return RoleStudent
	}
}

// User defines the user model based on the 'users' table. Accounts are
// created on first sign-in (upsert keyed by email) and never hard-deleted.
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Email          string    `json:"email" db:"email" example:"jane@uni.edu"` // Natural key, unique
	Name           string    `json:"name" db:"name" example:"Jane Doe"`
	ImageURL       *string   `json:"imageUrl,omitempty" db:"image_url"`
	Role           Role      `json:"role" db:"role" example:"student"`
	ContactEmail   *string   `json:"contactEmail,omitempty" db:"contact_email"`
	ContactPhone   *string   `json:"contactPhone,omitempty" db:"contact_phone"`
	ExternalAuthID *string   `json:"-" db:"external_auth_id"` // Identifier at the external identity provider
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
