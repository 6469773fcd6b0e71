package model

import "time"

// Video is an embedded YouTube/TikTok item, optionally linked to a store
// and optionally limited to a date window.
type Video struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	YoutubeURL   *string `json:"youtube_url"`
	TiktokURL    *string `json:"tiktok_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	OrderNumber  int     `gorm:"not null;default:0" json:"order_number"`
	IsActive     bool    `gorm:"default:true;index" json:"is_active"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	StoreID *uint  `gorm:"index" json:"store_id"`
	Store   *Store `json:"store,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// ActiveAt reports whether the video should be shown at the given time
func (v *Video) ActiveAt(now time.Time) bool {
	if !v.IsActive {
		return false
	}
	if v.StartDate != nil && now.Before(*v.StartDate) {
		return false
	}
	if v.EndDate != nil && now.After(*v.EndDate) {
		return false
	}
	return true
}
