package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table. List-valued columns are stored as
// JSON through the GORM serializer.
type MealModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(150);not null"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	PreparationTime int       `gorm:"not null"`
	ServingSize     string    `gorm:"type:varchar(50)"`
	Ingredients     []string  `gorm:"serializer:json;type:jsonb"`
	Allergens       []string  `gorm:"serializer:json;type:jsonb"`
	IsAvailable     bool      `gorm:"not null;default:true"`
	IsApproved      bool      `gorm:"not null;default:false"`
	Images          []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
