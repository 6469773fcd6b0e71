package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONMap stores a structured key-value JSON column (social links etc.)
type JSONMap map[string]string

// Value implements database/sql/driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements database/sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan JSONMap")
	}

	return json.Unmarshal(bytes, m)
}

// Store is a directory listing. Positions are unique per category and
// slugs are globally unique; both are enforced by the database.
type Store struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"` // URL identifier derived from the name
	Description string  `gorm:"type:text" json:"description"`
	Address     string  `gorm:"type:text" json:"address"`
	Province    string  `gorm:"index" json:"province"`
	SocialLinks JSONMap `gorm:"type:jsonb" json:"social_links,omitempty"`

	CategoryID uint      `gorm:"not null;uniqueIndex:idx_stores_category_order" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`

	// Display position within the category. Positive in steady state;
	// a transient negative sentinel appears only inside a swap transaction.
	OrderNumber int `gorm:"not null;uniqueIndex:idx_stores_category_order" json:"order_number"`

	CoverImage string `json:"cover_image,omitempty"`

	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	ExpiredAt    *time.Time `json:"expired_at"`
	RenewalCount int        `gorm:"not null;default:0" json:"renewal_count"` // increments only

	Images  []Image  `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Reviews []Review `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	VisitorCounter *VisitorCounter `gorm:"foreignKey:StoreID" json:"visitor_counter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}

// Image is owned by exactly one store; order is unique within that store.
type Image struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	StoreID     uint   `gorm:"not null;uniqueIndex:idx_images_store_order" json:"store_id"`
	ImageURL    string `gorm:"not null" json:"image_url"`
	OrderNumber int    `gorm:"not null;uniqueIndex:idx_images_store_order" json:"order_number"`
	AltText     string `json:"alt_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Image) TableName() string {
	return "images"
}

// StoreResponse is the store API shape. Legacy frontend pages read
// renew_count, the canonical column is renewal_count; the alias is
// applied here and nowhere else.
type StoreResponse struct {
	Store
	RenewCount int `json:"renew_count"`
}

func (s *Store) ToResponse() StoreResponse {
	return StoreResponse{Store: *s, RenewCount: s.RenewalCount}
}

// ToResponses maps a slice of stores in one pass
func ToResponses(stores []Store) []StoreResponse {
	out := make([]StoreResponse, len(stores))
	for i := range stores {
		out[i] = stores[i].ToResponse()
	}
	return out
}
