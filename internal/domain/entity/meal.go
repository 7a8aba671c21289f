// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a dish offered by exactly one Vendor. A meal only becomes visible
// to customers once an external moderation process sets IsApproved; vendors
// control availability themselves via IsAvailable.
type Meal struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the meal.
	VendorID        uuid.UUID // The Vendor this meal belongs to.
	CategoryID      uuid.UUID // The Category this meal is filed under.
	Title           string    // The dish name shown to customers.
	Description     string    // A description of the dish.
	Price           float64   // Unit price; always positive.
	Currency        string    // ISO currency code for the price.
	PreparationTime int       // Preparation time in minutes; always positive.
	ServingSize     string    // Free-text serving size label, e.g. "2 persons".
	Ingredients     []string  // Ordered ingredient list, free text.
	Allergens       []string  // Ordered allergen list, free text.
	IsAvailable     bool      // Vendor-controlled availability toggle.
	IsApproved      bool      // Set by moderation; defaults false for new meals.
	Images          []string  // Image references for the client.
	CreatedAt       time.Time // Timestamp of when this meal was created.
	UpdatedAt       time.Time // Timestamp of the last modification.

	Category *Category // Preloaded category, nil when not fetched.
}

// IsOrderable reports whether a customer may place an order for this meal.
func (m *Meal) IsOrderable() bool {
	return m.IsApproved && m.IsAvailable
}
