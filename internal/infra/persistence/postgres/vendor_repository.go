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

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// FindByID retrieves a vendor profile by its unique ID.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	return toVendorDomain(&vendorM), nil
}

// FindByUserID retrieves the vendor profile owned by a user.
func (repo *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by user ID")
	}

	return toVendorDomain(&vendorM), nil
}

// Create persists a new vendor profile.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVendor
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// Update modifies an existing vendor profile.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Updates(map[string]any{
			"business_name":        vendor.BusinessName,
			"business_description": vendor.BusinessDescription,
			"address":              vendor.Address,
			"city":                 vendor.City,
			"phone_number":         vendor.PhoneNumber,
			"whatsapp_number":      vendor.WhatsappNumber,
			"is_active":            vendor.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// IncrementTotalOrders bumps the aggregate delivered-order counter by one.
func (repo *vendorRepository) IncrementTotalOrders(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Update("total_orders", gorm.Expr("total_orders + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment total orders")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:                  data.ID,
		UserID:              data.UserID,
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		Address:             data.Address,
		City:                data.City,
		PhoneNumber:         data.PhoneNumber,
		WhatsappNumber:      data.WhatsappNumber,
		IsVerified:          data.IsVerified,
		IsActive:            data.IsActive,
		Rating:              data.Rating,
		TotalOrders:         data.TotalOrders,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		Address:             data.Address,
		City:                data.City,
		PhoneNumber:         data.PhoneNumber,
		WhatsappNumber:      data.WhatsappNumber,
		IsVerified:          data.IsVerified,
		IsActive:            data.IsActive,
		Rating:              data.Rating,
		TotalOrders:         data.TotalOrders,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
