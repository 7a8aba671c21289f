// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is the business profile of a home cook. It extends a User with role
// vendor one-to-one and is created in a separate setup step after sign-up,
// not bundled with it. A Vendor owns its Meals and is the read-scope
// boundary for the Orders a vendor may see.
type Vendor struct {
	ID                  uuid.UUID // The Global Unique Identifier (GUID) for the vendor profile.
	UserID              uuid.UUID // Foreign Key that links this profile to its core User entity.
	BusinessName        string    // The public name of the home kitchen.
	BusinessDescription string    // A description of the kitchen and its cooking.
	Address             string    // The pickup / kitchen street address.
	City                string    // The city the kitchen operates in.
	PhoneNumber         string    // The business contact number.
	WhatsappNumber      string    // Optional WhatsApp contact number.
	IsVerified          bool      // Whether the business passed manual verification.
	IsActive            bool      // Whether the business is currently taking orders.
	Rating              float64   // Aggregate review rating, maintained externally.
	TotalOrders         int       // Aggregate count of delivered orders.
	CreatedAt           time.Time // Timestamp of when this vendor profile was created.
	UpdatedAt           time.Time // Timestamp of the last modification.
}
