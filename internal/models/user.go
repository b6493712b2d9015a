package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// The password hash is never serialized.
type UserDB struct {
	UserID        uuid.UUID  `json:"id" db:"user_id"`
	Email         string     `json:"email" db:"email"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" db:"last_name"`
	Role          string     `json:"role" db:"role"`
	CompanyName   string     `json:"company_name" db:"company_name"`
	CompanyType   string     `json:"company_type" db:"company_type"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	Title         *string    `json:"title,omitempty" db:"title"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	EmailVerified bool       `json:"email_verified" db:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// UserProfileUpdate carries the partial-update fields for a profile.
// Nil fields keep their stored value.
type UserProfileUpdate struct {
	FirstName   *string
	LastName    *string
	CompanyName *string
	Phone       *string
	Title       *string
}
