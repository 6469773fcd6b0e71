package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  *string    `json:"-"` // NULL for social-login accounts
	Picture       string     `json:"picture,omitempty"`
	Role          UserRole   `gorm:"type:varchar(20);default:USER;not null" json:"role"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`

	OAuthAccounts []OAuthAccount `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the profile shape exposed through the API
type PublicUser struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
	Picture string   `json:"picture,omitempty"`
}

// Public maps a user to its API shape, the single place response
// shaping for users happens.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Picture: u.Picture,
	}
}
