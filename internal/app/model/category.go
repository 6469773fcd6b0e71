package model

import "time"

// Category groups store listings. Deleting a category with stores
// attached is rejected by the RESTRICT constraint on Store.CategoryID.
type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex:idx_categories_name;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Stores []Store `json:"stores,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
