// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// MealUsecase defines the interface for meal catalog operations.
// Vendor-side operations are keyed by the acting user's ID and are scoped to
// the vendor profile that user owns. Customer-side browsing only ever sees
// approved, available meals.
type MealUsecase interface {
	AddMeal(ctx context.Context, userID uuid.UUID, input *AddMealInput) (*entity.Meal, error)
	ListVendorMeals(ctx context.Context, userID uuid.UUID) ([]*entity.Meal, error)
	UpdateMeal(ctx context.Context, userID uuid.UUID, mealID uuid.UUID, input *UpdateMealInput) (*entity.Meal, error)
	SetMealAvailability(ctx context.Context, userID uuid.UUID, mealID uuid.UUID, available bool) error
	DeleteMeal(ctx context.Context, userID uuid.UUID, mealID uuid.UUID) error
	BrowseMeals(ctx context.Context, input *BrowseMealsInput) ([]*entity.Meal, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// --- Input DTOs ---

// AddMealInput defines the data required to list a new dish.
type AddMealInput struct {
	CategoryID      uuid.UUID `json:"category_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	PreparationTime int       `json:"preparation_time"`
	ServingSize     string    `json:"serving_size"`
	Ingredients     []string  `json:"ingredients"`
	Allergens       []string  `json:"allergens"`
	Images          []string  `json:"images"`
}

// UpdateMealInput defines the data required to update a dish.
// Nil fields are left untouched.
type UpdateMealInput struct {
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	PreparationTime *int       `json:"preparation_time,omitempty"`
	ServingSize     *string    `json:"serving_size,omitempty"`
	Ingredients     []string   `json:"ingredients,omitempty"`
	Allergens       []string   `json:"allergens,omitempty"`
	Images          []string   `json:"images,omitempty"`
}

// BrowseMealsInput narrows the public meal listing.
type BrowseMealsInput struct {
	VendorID   uuid.UUID `json:"vendor_id,omitempty"`
	CategoryID uuid.UUID `json:"category_id,omitempty"`
}
