// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealNotFound is returned when a meal is not found.
var ErrMealNotFound = errors.New("meal not found")

// MealFilter narrows a meal listing. Zero values mean "no constraint".
type MealFilter struct {
	VendorID      uuid.UUID // Restrict to one vendor when set.
	CategoryID    uuid.UUID // Restrict to one category when set.
	OnlyOrderable bool      // Restrict to approved and available meals.
}

// MealRepository defines the standard operations for meal persistence.
type MealRepository interface {
	// FindByID retrieves a meal by its unique ID, category preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// FindByVendor retrieves all meals of one vendor, newest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Meal, error)

	// Browse retrieves meals matching the filter, newest first.
	Browse(ctx context.Context, filter MealFilter) ([]*entity.Meal, error)

	// Create persists a new meal.
	Create(ctx context.Context, meal *entity.Meal) error

	// Update modifies an existing meal.
	Update(ctx context.Context, meal *entity.Meal) error

	// Delete removes a meal permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
