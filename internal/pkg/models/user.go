package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account (client or admin)
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           string    `json:"role" db:"role"`
	ChecksLeft     int       `json:"checks_left" db:"checks_left"`
	OriginalChecks int       `json:"original_checks" db:"original_checks"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// UserListFilter holds the optional admin user-listing filters
type UserListFilter struct {
	NameSearch  string
	EmailSearch string
	Role        string
	SortField   string
	SortAsc     bool
	Limit       int
	Offset      int
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
