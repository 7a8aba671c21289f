// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/response"
	"homeplate/internal/domain/entity"
	"homeplate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account, session and profile handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:    userUC,
		profileUC: profileUC,
		logger:    logger,
	}
}

// signUpRequest is the wire shape of the sign-up endpoint.
type signUpRequest struct {
	FullName    string          `json:"full_name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required"`
	PhoneNumber string          `json:"phone_number"`
	Role        string          `json:"role" validate:"required,oneof=customer vendor"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty"`
	Gender      *string         `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address     *entity.Address `json:"address,omitempty"`

	// Business fields are honored for vendor sign-ups only.
	BusinessName        string `json:"business_name,omitempty"`
	BusinessDescription string `json:"business_description,omitempty"`
}

// loginRequest is the wire shape of the login endpoint.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// refreshRequest is the wire shape of the logout and refresh endpoints.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SignUp handles the account creation request.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign up input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.SignUpInput{
		FullName:            req.FullName,
		Email:               req.Email,
		Password:            req.Password,
		PhoneNumber:         req.PhoneNumber,
		Role:                entity.Role(req.Role),
		DateOfBirth:         req.DateOfBirth,
		Address:             req.Address,
		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		input.Gender = &gender
	}

	output, err := h.userUC.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, output.User, "Account created successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout handles the logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"destination": entity.DestinationSignIn.String(),
	}, "Logout successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles the request to update the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// GetDestination tells the client where the current session should land.
func (h *UserHandler) GetDestination(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	destination, err := h.profileUC.ResolveDestination(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"destination": destination.String(),
	}, "Destination resolved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
