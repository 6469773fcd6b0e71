package model

import "time"

// VisitorCounter accumulates page visits per store. Deduplication of
// repeat visits happens in Redis before this row is touched.
type VisitorCounter struct {
	ID      uint  `gorm:"primarykey" json:"id"`
	StoreID uint  `gorm:"not null;uniqueIndex" json:"store_id"`
	Count   int64 `gorm:"not null;default:0" json:"count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VisitorCounter) TableName() string {
	return "visitor_counters"
}
