// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"homeplate/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order lifecycle operations.
//
// Status changes go through exactly two doors: UpdateOrderStatus for the
// vendor-driven forward chain, and CancelOrder for the customer's single
// escape hatch out of pending. Both doors validate the move against the
// transition table before anything is written.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListVendorOrders(ctx context.Context, userID uuid.UUID) (*entity.OrderBuckets, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, userID uuid.UUID, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) (*entity.Order, error)
}

// --- Input DTOs ---

// PlaceOrderInput defines the data required to place an order for one meal.
type PlaceOrderInput struct {
	MealID          uuid.UUID  `json:"meal_id"`
	Quantity        int        `json:"quantity"`
	CustomerNotes   string     `json:"customer_notes"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveryPhone   string     `json:"delivery_phone"`
	ScheduledFor    *time.Time `json:"scheduled_for,omitempty"`
}

// UpdateOrderStatusInput defines the vendor's requested status move.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status"`
}
