// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a cuisine / dish grouping meals are filed under.
type Category struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name        string    // The display name, e.g. "Desserts".
	Description string    // Optional longer description.
	Icon        string    // Optional icon reference for the client.
	IsActive    bool      // Whether the category is selectable for new meals.
	CreatedAt   time.Time // Timestamp of when this category was created.
}
