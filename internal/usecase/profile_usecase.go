// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ResolveDestination(ctx context.Context, userID uuid.UUID) (entity.Destination, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a user profile.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	FullName    *string         `json:"full_name,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty"`
	Gender      *entity.Gender  `json:"gender,omitempty"`
	Address     *entity.Address `json:"address,omitempty"`
}
