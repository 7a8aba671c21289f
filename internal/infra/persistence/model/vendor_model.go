package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table. Each row extends a user with role
// vendor one-to-one with the public business profile.
type VendorModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;unique;not null"`
	BusinessName        string    `gorm:"type:varchar(100);not null"`
	BusinessDescription string    `gorm:"type:text"`
	Address             string    `gorm:"type:varchar(255)"`
	City                string    `gorm:"type:varchar(100);index"`
	PhoneNumber         string    `gorm:"type:varchar(30)"`
	WhatsappNumber      string    `gorm:"type:varchar(30)"`
	IsVerified          bool      `gorm:"not null;default:false"`
	IsActive            bool      `gorm:"not null;default:true"`
	Rating              float64   `gorm:"not null;default:0"`
	TotalOrders         int       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Meals []MealModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
