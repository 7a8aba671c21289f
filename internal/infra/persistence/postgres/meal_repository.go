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

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// FindByID retrieves a meal by its unique ID, category preloaded.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by ID")
	}

	return toMealDomain(&mealM), nil
}

// FindByVendor retrieves all meals of one vendor, newest first.
func (repo *mealRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find meals by vendor")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// Browse retrieves meals matching the filter, newest first.
func (repo *mealRepository) Browse(ctx context.Context, filter repository.MealFilter) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	query := repo.db.WithContext(ctx).Preload("Category")
	if filter.VendorID != uuid.Nil {
		query = query.Where("vendor_id = ?", filter.VendorID)
	}
	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.OnlyOrderable {
		query = query.Where("is_approved = ? AND is_available = ?", true, true)
	}

	if err := query.
		Order("created_at DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to browse meals")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// Create persists a new meal.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vendor or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required meal information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("meal violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// Update modifies an existing meal.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", meal.ID).
		Updates(map[string]any{
			"category_id":      mealM.CategoryID,
			"title":            mealM.Title,
			"description":      mealM.Description,
			"price":            mealM.Price,
			"currency":         mealM.Currency,
			"preparation_time": mealM.PreparationTime,
			"serving_size":     mealM.ServingSize,
			"ingredients":      mealM.Ingredients,
			"allergens":        mealM.Allergens,
			"is_available":     mealM.IsAvailable,
			"is_approved":      mealM.IsApproved,
			"images":           mealM.Images,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal permanently.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMealDomain converts a GORM MealModel to a domain Meal entity.
func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	return &entity.Meal{
		ID:              data.ID,
		VendorID:        data.VendorID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		Price:           data.Price,
		Currency:        data.Currency,
		PreparationTime: data.PreparationTime,
		ServingSize:     data.ServingSize,
		Ingredients:     data.Ingredients,
		Allergens:       data.Allergens,
		IsAvailable:     data.IsAvailable,
		IsApproved:      data.IsApproved,
		Images:          data.Images,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Category:        toCategoryDomain(data.Category),
	}
}

// fromMealDomain converts a domain Meal entity to a GORM MealModel.
func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:              data.ID,
		VendorID:        data.VendorID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		Price:           data.Price,
		Currency:        data.Currency,
		PreparationTime: data.PreparationTime,
		ServingSize:     data.ServingSize,
		Ingredients:     data.Ingredients,
		Allergens:       data.Allergens,
		IsAvailable:     data.IsAvailable,
		IsApproved:      data.IsApproved,
		Images:          data.Images,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
