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

// mealService implements the MealUsecase interface.
type mealService struct {
	mealRepo     repository.MealRepository
	categoryRepo repository.CategoryRepository
	vendorRepo   repository.VendorRepository
	logger       *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(
	mealRepo repository.MealRepository,
	categoryRepo repository.CategoryRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) usecase.MealUsecase {
	return &mealService{
		mealRepo:     mealRepo,
		categoryRepo: categoryRepo,
		vendorRepo:   vendorRepo,
		logger:       logger,
	}
}

// ownVendor resolves the vendor profile of the acting user.
func (srv *mealService) ownVendor(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
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

	return vendor, nil
}

// ownMeal loads a meal and checks it belongs to the vendor.
// A meal of another vendor is reported as not found, not as forbidden, so
// the API does not leak which IDs exist.
func (srv *mealService) ownMeal(ctx context.Context, vendor *entity.Vendor, mealID uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal")
	}
	if meal.VendorID != vendor.ID {
		return nil, domainerrors.ErrMealNotFound
	}

	return meal, nil
}

// AddMeal lists a new dish for the acting vendor. New meals always start
// unapproved; moderation flips the flag out of band.
func (srv *mealService) AddMeal(ctx context.Context, userID uuid.UUID, input *usecase.AddMealInput) (*entity.Meal, error) {
	vendor, err := srv.ownVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}
	if input.PreparationTime <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("preparation time must be positive")
	}

	category, err := srv.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}
	if !category.IsActive {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category is not selectable")
	}

	meal := &entity.Meal{
		VendorID:        vendor.ID,
		CategoryID:      category.ID,
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		Currency:        input.Currency,
		PreparationTime: input.PreparationTime,
		ServingSize:     input.ServingSize,
		Ingredients:     input.Ingredients,
		Allergens:       input.Allergens,
		Images:          input.Images,
		IsAvailable:     true,
		IsApproved:      false,
	}
	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		srv.logger.Error("Failed to create meal", "error", err, "vendorID", vendor.ID)

		return nil, errors.Wrap(err, "failed to create meal")
	}
	srv.logger.Info("Meal created", "mealID", meal.ID, "vendorID", vendor.ID)

	return meal, nil
}

// ListVendorMeals retrieves the full catalog of the acting vendor,
// including unapproved and unavailable meals.
func (srv *mealService) ListVendorMeals(ctx context.Context, userID uuid.UUID) ([]*entity.Meal, error) {
	vendor, err := srv.ownVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	meals, err := srv.mealRepo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor meals")
	}

	return meals, nil
}

// UpdateMeal applies the non-nil fields of the input to one of the acting
// vendor's meals.
func (srv *mealService) UpdateMeal(ctx context.Context, userID uuid.UUID, mealID uuid.UUID, input *usecase.UpdateMealInput) (*entity.Meal, error) {
	vendor, err := srv.ownVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	meal, err := srv.ownMeal(ctx, vendor, mealID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
			}

			return nil, errors.Wrap(err, "failed to find category")
		}
		meal.CategoryID = category.ID
		meal.Category = category
	}
	if input.Title != nil {
		meal.Title = *input.Title
	}
	if input.Description != nil {
		meal.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
		}
		meal.Price = *input.Price
	}
	if input.Currency != nil {
		meal.Currency = *input.Currency
	}
	if input.PreparationTime != nil {
		if *input.PreparationTime <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("preparation time must be positive")
		}
		meal.PreparationTime = *input.PreparationTime
	}
	if input.ServingSize != nil {
		meal.ServingSize = *input.ServingSize
	}
	if input.Ingredients != nil {
		meal.Ingredients = input.Ingredients
	}
	if input.Allergens != nil {
		meal.Allergens = input.Allergens
	}
	if input.Images != nil {
		meal.Images = input.Images
	}

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		srv.logger.Error("Failed to update meal", "error", err, "mealID", mealID)

		return nil, errors.Wrap(err, "failed to update meal")
	}
	srv.logger.Debug("Meal updated", "mealID", mealID)

	return meal, nil
}

// SetMealAvailability flips the vendor-controlled availability toggle.
func (srv *mealService) SetMealAvailability(ctx context.Context, userID uuid.UUID, mealID uuid.UUID, available bool) error {
	vendor, err := srv.ownVendor(ctx, userID)
	if err != nil {
		return err
	}

	meal, err := srv.ownMeal(ctx, vendor, mealID)
	if err != nil {
		return err
	}

	meal.IsAvailable = available
	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		srv.logger.Error("Failed to set meal availability", "error", err, "mealID", mealID)

		return errors.Wrap(err, "failed to set meal availability")
	}

	return nil
}

// DeleteMeal removes one of the acting vendor's meals permanently. Existing
// orders keep their denormalized meal reference.
func (srv *mealService) DeleteMeal(ctx context.Context, userID uuid.UUID, mealID uuid.UUID) error {
	vendor, err := srv.ownVendor(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := srv.ownMeal(ctx, vendor, mealID); err != nil {
		return err
	}

	if err := srv.mealRepo.Delete(ctx, mealID); err != nil {
		srv.logger.Error("Failed to delete meal", "error", err, "mealID", mealID)

		return errors.Wrap(err, "failed to delete meal")
	}
	srv.logger.Info("Meal deleted", "mealID", mealID, "vendorID", vendor.ID)

	return nil
}

// BrowseMeals retrieves the public catalog. Only meals that passed
// moderation and are marked available are ever returned here.
func (srv *mealService) BrowseMeals(ctx context.Context, input *usecase.BrowseMealsInput) ([]*entity.Meal, error) {
	filter := repository.MealFilter{OnlyOrderable: true}
	if input != nil {
		filter.VendorID = input.VendorID
		filter.CategoryID = input.CategoryID
	}

	meals, err := srv.mealRepo.Browse(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse meals")
	}

	return meals, nil
}

// ListCategories retrieves all active categories.
func (srv *mealService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
