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

func newMealServiceForTest() (usecase.MealUsecase, *fakeRepoFactory) {
	factory := newFakeRepoFactory()
	svc := NewMealService(factory.mealRepo, factory.categoryRepo, factory.vendorRepo, newDiscardLogger())

	return svc, factory
}

func seedCategory(t *testing.T, factory *fakeRepoFactory, active bool) *entity.Category {
	t.Helper()

	category := &entity.Category{
		ID:       uuid.New(),
		Name:     "Main Dishes",
		IsActive: active,
	}
	factory.categoryRepo.categories[category.ID] = category

	return category
}

func validAddMealInput(categoryID uuid.UUID) *usecase.AddMealInput {
	return &usecase.AddMealInput{
		CategoryID:      categoryID,
		Title:           "Beef Rendang",
		Description:     "Slow cooked",
		Price:           15,
		Currency:        "USD",
		PreparationTime: 45,
		ServingSize:     "1 portion",
	}
}

func TestAddMealStartsUnapprovedAndAvailable(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	category := seedCategory(t, factory, true)

	meal, err := svc.AddMeal(context.Background(), vendor.UserID, validAddMealInput(category.ID))
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, meal.VendorID)
	assert.True(t, meal.IsAvailable)
	assert.False(t, meal.IsApproved, "new meals must wait for moderation")
	assert.False(t, meal.IsOrderable())
}

func TestAddMealRequiresVendorProfile(t *testing.T) {
	svc, factory := newMealServiceForTest()
	category := seedCategory(t, factory, true)

	_, err := svc.AddMeal(context.Background(), uuid.New(), validAddMealInput(category.ID))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestAddMealRequiresAuthentication(t *testing.T) {
	svc, factory := newMealServiceForTest()
	category := seedCategory(t, factory, true)

	_, err := svc.AddMeal(context.Background(), uuid.Nil, validAddMealInput(category.ID))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAddMealValidatesInput(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	category := seedCategory(t, factory, true)
	inactiveCategory := seedCategory(t, factory, false)

	t.Run("non-positive price", func(t *testing.T) {
		input := validAddMealInput(category.ID)
		input.Price = 0
		_, err := svc.AddMeal(context.Background(), vendor.UserID, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("non-positive preparation time", func(t *testing.T) {
		input := validAddMealInput(category.ID)
		input.PreparationTime = -5
		_, err := svc.AddMeal(context.Background(), vendor.UserID, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.AddMeal(context.Background(), vendor.UserID, validAddMealInput(uuid.New()))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("inactive category", func(t *testing.T) {
		_, err := svc.AddMeal(context.Background(), vendor.UserID, validAddMealInput(inactiveCategory.ID))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	assert.Empty(t, factory.mealRepo.meals)
}

func TestListVendorMealsIncludesUnapproved(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	seedMeal(t, factory, vendor.ID, 10, true)
	seedMeal(t, factory, vendor.ID, 12, false)
	seedMeal(t, factory, uuid.New(), 9, true)

	meals, err := svc.ListVendorMeals(context.Background(), vendor.UserID)
	require.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestUpdateMealMergesProvidedFields(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, vendor.ID, 10, true)

	newPrice := 14.5
	newTitle := "Spicy Beef Rendang"
	updated, err := svc.UpdateMeal(context.Background(), vendor.UserID, meal.ID, &usecase.UpdateMealInput{
		Title: &newTitle,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spicy Beef Rendang", updated.Title)
	assert.Equal(t, 14.5, updated.Price)
	assert.Equal(t, "USD", updated.Currency)
}

func TestUpdateMealRejectsNonPositivePrice(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, vendor.ID, 10, true)

	badPrice := -1.0
	_, err := svc.UpdateMeal(context.Background(), vendor.UserID, meal.ID, &usecase.UpdateMealInput{Price: &badPrice})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 10.0, factory.mealRepo.meals[meal.ID].Price)
}

func TestUpdateMealHidesOtherVendorsMeals(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	otherVendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, otherVendor.ID, 10, true)

	newTitle := "Hijacked"
	_, err := svc.UpdateMeal(context.Background(), vendor.UserID, meal.ID, &usecase.UpdateMealInput{Title: &newTitle})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
	assert.Equal(t, "Chicken Biryani", factory.mealRepo.meals[meal.ID].Title)
}

func TestSetMealAvailabilityTogglesFlag(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	meal := seedMeal(t, factory, vendor.ID, 10, true)

	require.NoError(t, svc.SetMealAvailability(context.Background(), vendor.UserID, meal.ID, false))
	assert.False(t, factory.mealRepo.meals[meal.ID].IsAvailable)

	require.NoError(t, svc.SetMealAvailability(context.Background(), vendor.UserID, meal.ID, true))
	assert.True(t, factory.mealRepo.meals[meal.ID].IsAvailable)
}

func TestDeleteMealRemovesOwnMealOnly(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	otherVendor := seedVendor(t, factory)
	ownMeal := seedMeal(t, factory, vendor.ID, 10, true)
	foreignMeal := seedMeal(t, factory, otherVendor.ID, 10, true)

	require.NoError(t, svc.DeleteMeal(context.Background(), vendor.UserID, ownMeal.ID))
	_, stillThere := factory.mealRepo.meals[ownMeal.ID]
	assert.False(t, stillThere)

	err := svc.DeleteMeal(context.Background(), vendor.UserID, foreignMeal.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
	_, stillThere = factory.mealRepo.meals[foreignMeal.ID]
	assert.True(t, stillThere)
}

func TestBrowseMealsReturnsOnlyOrderable(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	orderable := seedMeal(t, factory, vendor.ID, 10, true)
	seedMeal(t, factory, vendor.ID, 11, false)
	// Approved but switched off by the vendor.
	offMenu := seedMeal(t, factory, vendor.ID, 12, true)
	offMenu.IsAvailable = false
	require.NoError(t, factory.mealRepo.Update(context.Background(), offMenu))

	meals, err := svc.BrowseMeals(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, orderable.ID, meals[0].ID)
}

func TestBrowseMealsFiltersByVendorAndCategory(t *testing.T) {
	svc, factory := newMealServiceForTest()
	vendor := seedVendor(t, factory)
	otherVendor := seedVendor(t, factory)
	category := seedCategory(t, factory, true)

	meal := seedMeal(t, factory, vendor.ID, 10, true)
	meal.CategoryID = category.ID
	require.NoError(t, factory.mealRepo.Update(context.Background(), meal))
	seedMeal(t, factory, vendor.ID, 11, true)
	seedMeal(t, factory, otherVendor.ID, 12, true)

	byVendor, err := svc.BrowseMeals(context.Background(), &usecase.BrowseMealsInput{VendorID: vendor.ID})
	require.NoError(t, err)
	assert.Len(t, byVendor, 2)

	byCategory, err := svc.BrowseMeals(context.Background(), &usecase.BrowseMealsInput{CategoryID: category.ID})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, meal.ID, byCategory[0].ID)
}

func TestListCategoriesReturnsActiveOnly(t *testing.T) {
	svc, factory := newMealServiceForTest()
	seedCategory(t, factory, true)
	seedCategory(t, factory, false)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
