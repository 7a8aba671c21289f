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

// MealHandler holds dependencies for meal catalog handlers.
type MealHandler struct {
	uc     usecase.MealUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.MealUsecase, logger *slog.Logger) *MealHandler {
	return &MealHandler{
		uc:     uc,
		logger: logger,
	}
}

// availabilityRequest is the wire shape of the availability toggle.
type availabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// AddMeal handles listing a new dish.
func (h *MealHandler) AddMeal(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var input usecase.AddMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	meal, err := h.uc.AddMeal(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meal, "Meal created successfully")
}

// ListOwnMeals handles reading the acting vendor's full catalog.
func (h *MealHandler) ListOwnMeals(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	meals, err := h.uc.ListVendorMeals(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "Meals retrieved successfully")
}

// UpdateMeal handles editing one of the acting vendor's meals.
func (h *MealHandler) UpdateMeal(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	var input usecase.UpdateMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	meal, err := h.uc.UpdateMeal(c.Request().Context(), userID, mealID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal updated successfully")
}

// SetAvailability handles the vendor-controlled availability toggle.
func (h *MealHandler) SetAvailability(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := h.uc.SetMealAvailability(c.Request().Context(), userID, mealID, req.IsAvailable); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_available": req.IsAvailable}, "Availability updated successfully")
}

// DeleteMeal handles removing one of the acting vendor's meals.
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal ID")
	}

	if err := h.uc.DeleteMeal(c.Request().Context(), userID, mealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal deleted successfully")
}

// BrowseMeals handles the public catalog listing.
func (h *MealHandler) BrowseMeals(c echo.Context) error {
	var input usecase.BrowseMealsInput
	if raw := c.QueryParam("vendor_id"); raw != "" {
		vendorID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID filter")
		}
		input.VendorID = vendorID
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID filter")
		}
		input.CategoryID = categoryID
	}

	meals, err := h.uc.BrowseMeals(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "Meals retrieved successfully")
}

// ListCategories handles the public category listing.
func (h *MealHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}
