package postgres

import (
	"context"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order by its unique ID with customer and meal snapshots preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Meal").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByVendor retrieves all orders of one vendor, most recent first.
func (repo *orderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Meal").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by vendor")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByCustomer retrieves all orders placed by one customer, most recent first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Meal").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer, vendor or meal reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// UpdateStatus writes a new status for the order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		VendorID:        data.VendorID,
		MealID:          data.MealID,
		Quantity:        data.Quantity,
		TotalPrice:      data.TotalPrice,
		Currency:        data.Currency,
		Status:          entity.OrderStatus(data.Status),
		CustomerNotes:   data.CustomerNotes,
		VendorNotes:     data.VendorNotes,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryPhone:   data.DeliveryPhone,
		ScheduledFor:    data.ScheduledFor,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Customer:        toUserDomain(data.Customer),
		Meal:            toMealDomain(data.Meal),
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		VendorID:        data.VendorID,
		MealID:          data.MealID,
		Quantity:        data.Quantity,
		TotalPrice:      data.TotalPrice,
		Currency:        data.Currency,
		Status:          data.Status.String(),
		CustomerNotes:   data.CustomerNotes,
		VendorNotes:     data.VendorNotes,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryPhone:   data.DeliveryPhone,
		ScheduledFor:    data.ScheduledFor,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
