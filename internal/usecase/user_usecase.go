// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"homeplate/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
// The optional profile fields are applied to the new user; the business
// fields are only honored for vendor accounts and open the vendor profile
// in the same transaction.
type SignUpInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Role        entity.Role
	DateOfBirth *time.Time
	Gender      *entity.Gender
	Address     *entity.Address

	BusinessName        string
	BusinessDescription string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// RefreshTokenInput carries the raw refresh token being exchanged.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's basic information.
type SignUpOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login,
// together with the one-time navigation destination for the client.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Destination  entity.Destination
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
}
