// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null"`
	Slug     string `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	ImageURL string `json:"image_url" gorm:"size:500"`
}

type Product struct {
	BaseModel
	Name            string         `json:"name" gorm:"size:255;not null"`
	Description     string         `json:"description" gorm:"type:text"`
	CategoryID      uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	Price           float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice   *float64       `json:"original_price,omitempty" gorm:"type:decimal(10,2)"`
	DiscountPercent int            `json:"discount_percent" gorm:"default:0"`
	Stock           int            `json:"stock" gorm:"default:0"`
	Images          pq.StringArray `json:"images" gorm:"type:text[]"`
	Highlights      pq.StringArray `json:"highlights" gorm:"type:text[]"`
	Specifications  JSONB          `json:"specifications" gorm:"type:jsonb"`
	Rating          float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewsCount    int64          `json:"reviews_count" gorm:"default:0"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
