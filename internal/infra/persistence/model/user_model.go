package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	FullName    string    `gorm:"type:varchar(100)"`
	PhoneNumber string    `gorm:"type:varchar(30)"`
	Role        string    `gorm:"type:varchar(20);not null;index"`
	DateOfBirth *time.Time
	Gender      string `gorm:"type:varchar(10)"`
	Street      string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(100)"`
	State       string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20)"`
	Country     string `gorm:"type:varchar(100)"`
	IsActive    bool   `gorm:"not null;default:true"`
	IsVerified  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	VendorProfile   *VendorModel          `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
