package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Rows are append-only apart from the
// status and vendor note columns; cancelled orders stay in place.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	MealID          uuid.UUID `gorm:"type:uuid;not null"`
	Quantity        int       `gorm:"not null"`
	TotalPrice      float64   `gorm:"not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	CustomerNotes   string    `gorm:"type:text"`
	VendorNotes     string    `gorm:"type:text"`
	DeliveryAddress string    `gorm:"type:varchar(255)"`
	DeliveryPhone   string    `gorm:"type:varchar(30)"`
	ScheduledFor    *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Customer *UserModel `gorm:"foreignKey:CustomerID"`
	Meal     *MealModel `gorm:"foreignKey:MealID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
