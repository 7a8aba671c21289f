// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the self-reported gender on a user profile.
type Gender string

const (
	// GenderMale indicates a male user.
	GenderMale Gender = "male"
	// GenderFemale indicates a female user.
	GenderFemale Gender = "female"
	// GenderOther indicates any other gender identity.
	GenderOther Gender = "other"
)

// IsValid checks if the Gender is a valid value. The empty string is valid
// because the field is optional at sign-up.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, "":
		return true
	default:
		return false
	}
}

// User is the core identity in the system, representing a unique "person".
// It carries the fundamental profile information shared across all roles;
// vendor-specific business data lives on the separate Vendor entity.
type User struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email       string     // The user's primary contact email, used as the login identifier.
	FullName    string     // The user's display name.
	PhoneNumber string     // Optional contact phone number.
	Role        Role       // The account role, fixed at sign-up (customer, vendor or admin).
	DateOfBirth *time.Time // Optional date of birth.
	Gender      Gender     // Optional self-reported gender.
	Address     *Address   // Optional structured home address.
	IsActive    bool       // Whether the account is active and allowed to sign in.
	IsVerified  bool       // Whether the account passed email/phone verification.
	CreatedAt   time.Time  // Timestamp of when this user account was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this user's data.
}

// Address is a structured postal address attached to a user profile.
type Address struct {
	Street     string // Street line, including house number.
	City       string // City or town.
	State      string // State, province or governorate.
	PostalCode string // Postal or ZIP code.
	Country    string // Country name.
}
