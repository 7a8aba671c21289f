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

// VendorHandler holds dependencies for vendor profile handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProfile handles opening a vendor business profile.
func (h *VendorHandler) CreateProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var input usecase.CreateVendorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	vendor, err := h.uc.CreateVendorProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor profile created successfully")
}

// GetOwnProfile handles reading the acting vendor's own business profile.
func (h *VendorHandler) GetOwnProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	vendor, err := h.uc.GetOwnVendorProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor profile retrieved successfully")
}

// GetVendor handles reading a vendor's public storefront profile.
func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	vendor, err := h.uc.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor retrieved successfully")
}

// UpdateProfile handles updating the acting vendor's business profile.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var input usecase.UpdateVendorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	vendor, err := h.uc.UpdateVendorProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor profile updated successfully")
}

// StorefrontQR renders the PNG QR code for the acting vendor's storefront.
func (h *VendorHandler) StorefrontQR(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	png, err := h.uc.StorefrontQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
