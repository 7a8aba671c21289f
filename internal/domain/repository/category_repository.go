// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines read operations for meal categories.
// Categories are seeded and maintained outside the application.
type CategoryRepository interface {
	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindActive retrieves all active categories, ordered by name.
	FindActive(ctx context.Context) ([]*entity.Category, error)
}
