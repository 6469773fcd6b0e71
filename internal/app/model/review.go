package model

import "time"

type Review struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	StoreID uint   `gorm:"not null;index" json:"store_id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    *User  `json:"user,omitempty"`
	Rating  int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
