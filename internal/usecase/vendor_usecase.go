// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorUsecase defines the interface for vendor profile operations.
// Vendor-facing operations are keyed by the acting user's ID; the owned
// vendor profile is resolved internally so a vendor can never act on a
// profile that is not theirs.
type VendorUsecase interface {
	CreateVendorProfile(ctx context.Context, userID uuid.UUID, input *CreateVendorInput) (*entity.Vendor, error)
	GetOwnVendorProfile(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error)
	UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input *UpdateVendorInput) (*entity.Vendor, error)
	StorefrontQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// CreateVendorInput defines the data required to open a vendor profile.
type CreateVendorInput struct {
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	Address             string `json:"address"`
	City                string `json:"city"`
	PhoneNumber         string `json:"phone_number"`
	WhatsappNumber      string `json:"whatsapp_number"`
}

// UpdateVendorInput defines the data required to update a vendor profile.
// Nil fields are left untouched.
type UpdateVendorInput struct {
	BusinessName        *string `json:"business_name,omitempty"`
	BusinessDescription *string `json:"business_description,omitempty"`
	Address             *string `json:"address,omitempty"`
	City                *string `json:"city,omitempty"`
	PhoneNumber         *string `json:"phone_number,omitempty"`
	WhatsappNumber      *string `json:"whatsapp_number,omitempty"`
	IsActive            *bool   `json:"is_active,omitempty"`
}
