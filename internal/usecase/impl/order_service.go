package impl

import (
	"context"
	"log/slog"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:  txManager,
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// PlaceOrder creates a pending order for one meal. The total price is
// computed server side from the meal's current unit price; the client never
// supplies an amount.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if customerID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	var placedOrder *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealRepo := repoFactory.MealRepo()
		orderRepo := repoFactory.OrderRepo()

		meal, err := mealRepo.FindByID(ctx, input.MealID)
		if err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound
			}

			return errors.Wrap(err, "failed to find meal")
		}
		if !meal.IsOrderable() {
			return domainerrors.ErrMealNotOrderable
		}

		order := &entity.Order{
			CustomerID:      customerID,
			VendorID:        meal.VendorID,
			MealID:          meal.ID,
			Quantity:        input.Quantity,
			TotalPrice:      meal.Price * float64(input.Quantity),
			Currency:        meal.Currency,
			Status:          entity.OrderStatusPending,
			CustomerNotes:   input.CustomerNotes,
			DeliveryAddress: input.DeliveryAddress,
			DeliveryPhone:   input.DeliveryPhone,
			ScheduledFor:    input.ScheduledFor,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.WithStack(err)
		}
		order.Meal = meal
		placedOrder = order

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to place order", "error", err, "customerID", customerID)

		return nil, errors.Wrap(err, "failed to place order")
	}
	srv.logger.Info("Order placed", "orderID", placedOrder.ID, "vendorID", placedOrder.VendorID)

	return placedOrder, nil
}

// ListVendorOrders retrieves all orders of the acting vendor, partitioned
// into the pending / active / completed display buckets.
func (srv *orderService) ListVendorOrders(ctx context.Context, userID uuid.UUID) (*entity.OrderBuckets, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve vendor profile")
	}

	orders, err := srv.orderRepo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor orders")
	}

	buckets := entity.BucketOrders(orders)

	return &buckets, nil
}

// ListCustomerOrders retrieves all orders placed by the acting customer,
// most recent first.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	if customerID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves one of the acting vendor's orders along the
// lifecycle. The move is checked against the transition table first; an
// illegal move is rejected before any write happens and the stored status
// stays untouched. Delivering an order also bumps the vendor's aggregate
// counter, in the same transaction as the status write.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, userID uuid.UUID, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve vendor profile")
	}

	var updatedOrder *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		vendorRepo := repoFactory.VendorRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}
		if order.VendorID != vendor.ID {
			// Orders of other vendors are invisible, not forbidden.
			return domainerrors.ErrOrderNotFound
		}

		if !order.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrIllegalTransition.WithDetails(
				order.Status.String() + " -> " + input.Status.String(),
			)
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, input.Status); err != nil {
			return errors.WithStack(err)
		}

		if input.Status == entity.OrderStatusDelivered {
			if err := vendorRepo.IncrementTotalOrders(ctx, vendor.ID); err != nil {
				return errors.Wrap(err, "failed to increment vendor order count")
			}
		}

		order.Status = input.Status
		updatedOrder = order

		return nil
	})
	if err != nil {
		srv.logger.Warn("Order status update rejected", "error", err, "orderID", orderID)

		return nil, errors.Wrap(err, "failed to update order status")
	}
	srv.logger.Info("Order status updated", "orderID", orderID, "status", updatedOrder.Status)

	return updatedOrder, nil
}

// CancelOrder is the customer's single escape hatch: an order may only be
// cancelled by the customer who placed it, and only while still pending.
func (srv *orderService) CancelOrder(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	if customerID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	var cancelledOrder *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}
		if order.CustomerID != customerID {
			return domainerrors.ErrOrderNotFound
		}

		if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
			return domainerrors.ErrIllegalTransition.WithDetails(
				order.Status.String() + " -> " + entity.OrderStatusCancelled.String(),
			)
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
			return errors.WithStack(err)
		}

		order.Status = entity.OrderStatusCancelled
		cancelledOrder = order

		return nil
	})
	if err != nil {
		srv.logger.Warn("Order cancellation rejected", "error", err, "orderID", orderID)

		return nil, errors.Wrap(err, "failed to cancel order")
	}
	srv.logger.Info("Order cancelled", "orderID", orderID)

	return cancelledOrder, nil
}
