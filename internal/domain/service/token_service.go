package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the validated content of a token this service issued.
type Claims struct {
	UserID uuid.UUID // Subject of the token.
	Roles  []string  // Role strings carried by access tokens only.
	Type   string    // "access" or "refresh".
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the validity of an access token string.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks the validity of a refresh token string.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hash under which a raw refresh token is stored.
	HashToken(tokenString string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
