// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the authentication provider for email/password
// credentials. It is the only provider the marketplace currently supports.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
// A user's email/password pair is one record; the design leaves room for
// additional providers without touching the users table.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The user's unique ID at the provider; for "email" this is the email address.
	PasswordHash   string    // Stores the bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this authentication method was created.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without
// requiring credentials again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}
