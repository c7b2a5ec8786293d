package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxFailedLoginAttempts = 5

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrDisplayNameRequired = errors.New("display name is required")
)

// User owns a household ledger. Every expense, budget and bank transaction is scoped to one user.
type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string         `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName         string         `gorm:"type:varchar(100);not null" json:"display_name"`
	FailedLoginAttempts int            `gorm:"default:0" json:"-"`
	LockedAt            *time.Time     `json:"locked_at,omitempty"`
	LastLoginAt         *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmailRequired
	}

	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if strings.TrimSpace(u.DisplayName) == "" {
		return ErrDisplayNameRequired
	}

	return nil
}

func (u *User) IsLocked() bool {
	return u.LockedAt != nil
}

// RecordFailedLogin counts a failed attempt and locks the user once the limit is reached
func (u *User) RecordFailedLogin() {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= MaxFailedLoginAttempts && u.LockedAt == nil {
		now := time.Now()
		u.LockedAt = &now
	}
}

// RecordLogin clears failed attempts and stamps the login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.FailedLoginAttempts = 0
	u.LastLoginAt = &now
}

func (u *User) TableName() string {
	return "users"
}
