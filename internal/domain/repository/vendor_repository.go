// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor profile is not found.
	ErrVendorNotFound = errors.New("vendor profile not found")
	// ErrDuplicateVendor is returned when the user already owns a vendor profile.
	ErrDuplicateVendor = errors.New("vendor profile already exists for this user")
)

// VendorRepository defines the standard operations for vendor profile persistence.
type VendorRepository interface {
	// FindByID retrieves a vendor profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindByUserID retrieves the vendor profile owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// Create persists a new vendor profile.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// Update modifies an existing vendor profile.
	Update(ctx context.Context, vendor *entity.Vendor) error

	// IncrementTotalOrders bumps the aggregate delivered-order counter by one.
	IncrementTotalOrders(ctx context.Context, id uuid.UUID) error
}
