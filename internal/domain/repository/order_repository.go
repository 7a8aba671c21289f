// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are never deleted; the only mutation after creation is the status
// write performed by UpdateStatus.
type OrderRepository interface {
	// FindByID retrieves an order by its unique ID with customer and meal
	// snapshots preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByVendor retrieves all orders of one vendor, most recent first,
	// with customer and meal snapshots preloaded.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)

	// FindByCustomer retrieves all orders placed by one customer, most
	// recent first, with meal snapshots preloaded.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus writes a new status for the order. Legality of the move
	// is the caller's responsibility; the repository only persists it.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
