// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase of one meal by one customer from one vendor. Orders
// are never deleted; cancellation is a terminal status, not a removal. The
// status field only ever changes through the transition table on
// OrderStatus.
type Order struct {
	ID              uuid.UUID   // The Global Unique Identifier (GUID) for the order.
	CustomerID      uuid.UUID   // The User (role customer) who placed the order.
	VendorID        uuid.UUID   // The Vendor the order was placed with.
	MealID          uuid.UUID   // The Meal that was ordered.
	Quantity        int         // Number of units; always positive.
	TotalPrice      float64     // Quantity times the meal's unit price at order time.
	Currency        string      // ISO currency code, copied from the meal.
	Status          OrderStatus // Current lifecycle state.
	CustomerNotes   string      // Free-text notes from the customer.
	VendorNotes     string      // Free-text notes from the vendor.
	DeliveryAddress string      // Destination address for delivery orders.
	DeliveryPhone   string      // Contact number for the delivery.
	ScheduledFor    *time.Time  // Optional requested handover time.
	CreatedAt       time.Time   // Timestamp of when the order was placed.
	UpdatedAt       time.Time   // Timestamp of the last modification.

	Customer *User // Denormalized customer snapshot for display, nil when not fetched.
	Meal     *Meal // Denormalized meal snapshot for display, nil when not fetched.
}

// OrderBuckets is a vendor order list partitioned into the three disjoint
// display groups. Each slice keeps the most-recent-first ordering of the
// underlying listing.
type OrderBuckets struct {
	Pending   []*Order // Orders awaiting confirmation.
	Active    []*Order // Orders being worked on (confirmed, preparing, ready).
	Completed []*Order // Orders that reached a terminal state.
}

// BucketOrders partitions orders into display buckets by status.
func BucketOrders(orders []*Order) OrderBuckets {
	var buckets OrderBuckets
	for _, order := range orders {
		switch order.Status.Bucket() {
		case OrderBucketPending:
			buckets.Pending = append(buckets.Pending, order)
		case OrderBucketActive:
			buckets.Active = append(buckets.Active, order)
		case OrderBucketCompleted:
			buckets.Completed = append(buckets.Completed, order)
		}
	}

	return buckets
}
