package handler

import (
	"log/slog"
	"net/http"

	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/response"
	"homeplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles a customer placing an order for one meal.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	customerID := middleware.UserIDFromContext(c)

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), customerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListVendorOrders handles the vendor order screen: all orders of the acting
// vendor, partitioned into pending, active and completed buckets.
func (h *OrderHandler) ListVendorOrders(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	buckets, err := h.uc.ListVendorOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buckets, "Orders retrieved successfully")
}

// ListOwnOrders handles a customer's order history.
func (h *OrderHandler) ListOwnOrders(c echo.Context) error {
	customerID := middleware.UserIDFromContext(c)

	orders, err := h.uc.ListCustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles the vendor moving an order along the lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), userID, orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// CancelOrder handles a customer cancelling a still-pending order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	customerID := middleware.UserIDFromContext(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}
