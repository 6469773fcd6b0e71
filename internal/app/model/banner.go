package model

import "time"

// Banner is a homepage promotional slot
type Banner struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `json:"title"`
	ImageURL    string `gorm:"not null" json:"image_url"`
	LinkURL     string `json:"link_url,omitempty"`
	OrderNumber int    `gorm:"not null;default:0" json:"order_number"`
	IsActive    bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Banner) TableName() string {
	return "banners"
}
