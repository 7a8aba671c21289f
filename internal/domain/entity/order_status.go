// Package entity contains the core business objects of the project.
package entity

// OrderStatus is the lifecycle state of an Order.
//
// The legal moves form a single vendor-driven chain
//
//	pending -> confirmed -> preparing -> ready -> delivered
//
// with one side exit, pending -> cancelled. Delivered and cancelled are
// terminal. This table, not the database, is the source of truth for
// legality: a write is only attempted after the move passed CanTransitionTo.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of a freshly placed order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the vendor accepted the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusPreparing means the vendor started cooking.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusReady means the order is ready for pickup or delivery.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusDelivered means the order reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled means the order was cancelled before confirmation. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// legalTransitions holds every permitted (current, target) pair.
var legalTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {
		OrderStatusConfirmed: true,
		OrderStatusCancelled: true,
	},
	OrderStatusConfirmed: {
		OrderStatusPreparing: true,
	},
	OrderStatusPreparing: {
		OrderStatusReady: true,
	},
	OrderStatusReady: {
		OrderStatusDelivered: true,
	},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition out of this status is legal.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to target is legal.
// Re-applying the current status (s == target) is not legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return legalTransitions[s][target]
}

// Next returns the forward step on the linear chain and true, or false when
// the status has no forward step (terminal states). Cancellation is not a
// forward step and is never returned here.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusConfirmed, true
	case OrderStatusConfirmed:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}

// OrderBucket is the display grouping of an order status on the vendor
// order screen. Purely presentational, never stored.
type OrderBucket string

const (
	// OrderBucketPending groups new, unconfirmed orders.
	OrderBucketPending OrderBucket = "pending"
	// OrderBucketActive groups confirmed, preparing and ready orders.
	OrderBucketActive OrderBucket = "active"
	// OrderBucketCompleted groups delivered and cancelled orders.
	OrderBucketCompleted OrderBucket = "completed"
)

// Bucket returns the display bucket this status belongs to.
func (s OrderStatus) Bucket() OrderBucket {
	switch s {
	case OrderStatusPending:
		return OrderBucketPending
	case OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady:
		return OrderBucketActive
	default:
		return OrderBucketCompleted
	}
}
