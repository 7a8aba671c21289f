package impl

import (
	"context"
	"testing"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest() (usecase.OrderUsecase, *fakeRepoFactory) {
	factory := newFakeRepoFactory()
	svc := NewOrderService(&fakeTxManager{factory: factory}, factory.orderRepo, factory.vendorRepo, newDiscardLogger())

	return svc, factory
}

func seedVendor(t *testing.T, factory *fakeRepoFactory) *entity.Vendor {
	t.Helper()

	vendor := &entity.Vendor{
		UserID:       uuid.New(),
		BusinessName: "Mama's Kitchen",
		IsActive:     true,
	}
	require.NoError(t, factory.vendorRepo.Create(context.Background(), vendor))

	return vendor
}

func seedMeal(t *testing.T, factory *fakeRepoFactory, vendorID uuid.UUID, price float64, orderable bool) *entity.Meal {
	t.Helper()

	meal := &entity.Meal{
		VendorID:    vendorID,
		Title:       "Chicken Biryani",
		Price:       price,
		Currency:    "USD",
		IsAvailable: orderable,
		IsApproved:  orderable,
	}
	require.NoError(t, factory.mealRepo.Create(context.Background(), meal))

	return meal
}

func seedOrder(t *testing.T, factory *fakeRepoFactory, customerID, vendorID uuid.UUID, status entity.OrderStatus) *entity.Order {
	t.Helper()

	order := &entity.Order{
		CustomerID: customerID,
		VendorID:   vendorID,
		MealID:     uuid.New(),
		Quantity:   1,
		TotalPrice: 10,
		Status:     status,
	}
	require.NoError(t, factory.orderRepo.Create(context.Background(), order))

	return order
}

func TestPlaceOrderComputesTotalServerSide(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, vendor.ID, 12.5, true)
	customerID := uuid.New()

	order, err := svc.PlaceOrder(context.Background(), customerID, &usecase.PlaceOrderInput{
		MealID:   meal.ID,
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 37.5, order.TotalPrice)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, vendor.ID, order.VendorID)
	assert.Equal(t, customerID, order.CustomerID)
}

func TestPlaceOrderRequiresAuthentication(t *testing.T) {
	svc, _ := newOrderServiceForTest()

	_, err := svc.PlaceOrder(context.Background(), uuid.Nil, &usecase.PlaceOrderInput{
		MealID:   uuid.New(),
		Quantity: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, vendor.ID, 12.5, true)

	for _, quantity := range []int{0, -1} {
		_, err := svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
			MealID:   meal.ID,
			Quantity: quantity,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
	assert.Empty(t, factory.orderRepo.orders)
}

func TestPlaceOrderRejectsNonOrderableMeal(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, vendor.ID, 12.5, false)

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		MealID:   meal.ID,
		Quantity: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotOrderable)
	assert.Empty(t, factory.orderRepo.orders)
}

func TestPlaceOrderRejectsUnknownMeal(t *testing.T) {
	svc, _ := newOrderServiceForTest()

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		MealID:   uuid.New(),
		Quantity: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestListVendorOrdersBucketsByStatus(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	customerID := uuid.New()

	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusPending)
	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusConfirmed)
	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusPreparing)
	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusReady)
	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusDelivered)
	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusCancelled)
	// An order of another vendor must never show up.
	seedOrder(t, factory, customerID, uuid.New(), entity.OrderStatusPending)

	buckets, err := svc.ListVendorOrders(context.Background(), vendor.UserID)
	require.NoError(t, err)
	assert.Len(t, buckets.Pending, 1)
	assert.Len(t, buckets.Active, 3)
	assert.Len(t, buckets.Completed, 2)
}

func TestListVendorOrdersRequiresVendorProfile(t *testing.T) {
	svc, _ := newOrderServiceForTest()

	_, err := svc.ListVendorOrders(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestListCustomerOrdersReturnsOwnOrdersOnly(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	customerID := uuid.New()

	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusPending)
	seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusDelivered)
	seedOrder(t, factory, uuid.New(), vendor.ID, entity.OrderStatusPending)

	orders, err := svc.ListCustomerOrders(context.Background(), customerID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, customerID, order.CustomerID)
	}
}

func TestUpdateOrderStatusAdvancesAlongTheChain(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	order := seedOrder(t, factory, uuid.New(), vendor.ID, entity.OrderStatusPending)

	chain := []entity.OrderStatus{
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
		entity.OrderStatusDelivered,
	}
	for _, next := range chain {
		updated, err := svc.UpdateOrderStatus(context.Background(), vendor.UserID, order.ID, &usecase.UpdateOrderStatusInput{Status: next})
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
		assert.Equal(t, next, factory.orderRepo.orders[order.ID].Status)
	}
}

func TestUpdateOrderStatusRejectsIllegalMoveWithoutWriting(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{name: "skipping a step", from: entity.OrderStatusPending, to: entity.OrderStatusPreparing},
		{name: "moving backwards", from: entity.OrderStatusPreparing, to: entity.OrderStatusConfirmed},
		{name: "cancelling after confirmation", from: entity.OrderStatusConfirmed, to: entity.OrderStatusCancelled},
		{name: "leaving delivered", from: entity.OrderStatusDelivered, to: entity.OrderStatusPending},
		{name: "leaving cancelled", from: entity.OrderStatusCancelled, to: entity.OrderStatusConfirmed},
		{name: "same state", from: entity.OrderStatusPending, to: entity.OrderStatusPending},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, factory := newOrderServiceForTest()
			vendor := seedVendor(t, factory)
			order := seedOrder(t, factory, uuid.New(), vendor.ID, testCase.from)

			_, err := svc.UpdateOrderStatus(context.Background(), vendor.UserID, order.ID, &usecase.UpdateOrderStatusInput{Status: testCase.to})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
			// The rejection happens before any write: the stored status is
			// untouched and the repository was never asked to change it.
			assert.Equal(t, testCase.from, factory.orderRepo.orders[order.ID].Status)
			assert.Zero(t, factory.orderRepo.updateStatusCalls)
		})
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	order := seedOrder(t, factory, uuid.New(), vendor.ID, entity.OrderStatusPending)

	_, err := svc.UpdateOrderStatus(context.Background(), vendor.UserID, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatus("shipped")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUpdateOrderStatusHidesOtherVendorsOrders(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	otherVendor := seedVendor(t, factory)
	order := seedOrder(t, factory, uuid.New(), otherVendor.ID, entity.OrderStatusPending)

	_, err := svc.UpdateOrderStatus(context.Background(), vendor.UserID, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Equal(t, entity.OrderStatusPending, factory.orderRepo.orders[order.ID].Status)
}

func TestUpdateOrderStatusDeliveredBumpsVendorCounter(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	order := seedOrder(t, factory, uuid.New(), vendor.ID, entity.OrderStatusReady)

	_, err := svc.UpdateOrderStatus(context.Background(), vendor.UserID, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, 1, factory.vendorRepo.vendors[vendor.ID].TotalOrders)
}

func TestUpdateOrderStatusNonDeliveredLeavesCounterAlone(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	order := seedOrder(t, factory, uuid.New(), vendor.ID, entity.OrderStatusPending)

	_, err := svc.UpdateOrderStatus(context.Background(), vendor.UserID, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	require.NoError(t, err)
	assert.Zero(t, factory.vendorRepo.vendors[vendor.ID].TotalOrders)
}

func TestCancelOrderWhilePending(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	customerID := uuid.New()
	order := seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusPending)

	cancelled, err := svc.CancelOrder(context.Background(), customerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, entity.OrderStatusCancelled, factory.orderRepo.orders[order.ID].Status)
}

func TestCancelOrderRejectedOnceConfirmed(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	customerID := uuid.New()
	order := seedOrder(t, factory, customerID, vendor.ID, entity.OrderStatusConfirmed)

	_, err := svc.CancelOrder(context.Background(), customerID, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
	assert.Equal(t, entity.OrderStatusConfirmed, factory.orderRepo.orders[order.ID].Status)
}

func TestCancelOrderHidesOtherCustomersOrders(t *testing.T) {
	svc, factory := newOrderServiceForTest()
	vendor := seedVendor(t, factory)
	order := seedOrder(t, factory, uuid.New(), vendor.ID, entity.OrderStatusPending)

	_, err := svc.CancelOrder(context.Background(), uuid.New(), order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Equal(t, entity.OrderStatusPending, factory.orderRepo.orders[order.ID].Status)
}
