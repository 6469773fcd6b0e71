package model

import "time"

// TrackingScript is an analytics/pixel snippet injected by the frontend.
// StoreID nil means the script belongs to the main website.
type TrackingScript struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	Provider   string  `gorm:"not null;index" json:"provider"`
	TrackingID *string `json:"tracking_id"`
	Script     *string `gorm:"type:text" json:"script"`
	Placement  string  `gorm:"type:varchar(20);default:HEAD" json:"placement"`
	Strategy   string  `gorm:"type:varchar(40);default:afterInteractive" json:"strategy"`
	Enabled    bool    `gorm:"default:true;index" json:"enabled"`

	StoreID *uint  `gorm:"index" json:"store_id"`
	Store   *Store `json:"store,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TrackingScript) TableName() string {
	return "tracking_scripts"
}
