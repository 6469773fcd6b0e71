package model

import "time"

type OAuthProvider string

const (
	ProviderGoogle   OAuthProvider = "GOOGLE"
	ProviderFacebook OAuthProvider = "FACEBOOK"
)

// OAuthAccount links a user to an external identity provider account.
// One row per (provider, provider_account_id) pair.
type OAuthAccount struct {
	ID                uint          `gorm:"primarykey" json:"id"`
	UserID            uint          `gorm:"not null;index" json:"user_id"`
	Provider          OAuthProvider `gorm:"type:varchar(20);not null;uniqueIndex:idx_oauth_provider_account" json:"provider"`
	ProviderAccountID string        `gorm:"not null;uniqueIndex:idx_oauth_provider_account" json:"provider_account_id"`
	AccessToken       *string       `json:"-"`
	RefreshToken      *string       `json:"-"`
	ExpiresAt         *time.Time    `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OAuthAccount) TableName() string {
	return "oauth_accounts"
}
