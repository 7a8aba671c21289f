package impl

import (
	"context"
	"log/slog"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/domain/service"
	"homeplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo    repository.VendorRepository
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(
	vendorRepo repository.VendorRepository,
	userRepo repository.UserRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:    vendorRepo,
		userRepo:      userRepo,
		qrcodeService: qrcodeService,
		logger:        logger,
	}
}

// CreateVendorProfile opens the business profile for a vendor account.
// One profile per user; a second attempt conflicts.
func (srv *vendorService) CreateVendorProfile(ctx context.Context, userID uuid.UUID, input *usecase.CreateVendorInput) (*entity.Vendor, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for vendor profile")
	}
	if user.Role != entity.RoleVendor && user.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("only vendor accounts can open a business profile")
	}

	vendor := &entity.Vendor{
		UserID:              userID,
		BusinessName:        input.BusinessName,
		BusinessDescription: input.BusinessDescription,
		Address:             input.Address,
		City:                input.City,
		PhoneNumber:         input.PhoneNumber,
		WhatsappNumber:      input.WhatsappNumber,
		IsActive:            true,
	}
	if err := srv.vendorRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendor) {
			return nil, domainerrors.ErrVendorAlreadyExists
		}
		srv.logger.Error("Failed to create vendor profile", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to create vendor profile")
	}
	srv.logger.Info("Vendor profile created", "vendorID", vendor.ID, "userID", userID)

	return vendor, nil
}

// GetOwnVendorProfile retrieves the business profile owned by the acting user.
func (srv *vendorService) GetOwnVendorProfile(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to get vendor profile")
	}

	return vendor, nil
}

// GetVendor retrieves a vendor's public profile by its ID.
func (srv *vendorService) GetVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to get vendor")
	}

	return vendor, nil
}

// UpdateVendorProfile applies the non-nil fields of the input to the vendor
// profile owned by the acting user. Verification status and aggregates are
// never writable from here.
func (srv *vendorService) UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := srv.GetOwnVendorProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		vendor.BusinessName = *input.BusinessName
	}
	if input.BusinessDescription != nil {
		vendor.BusinessDescription = *input.BusinessDescription
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.City != nil {
		vendor.City = *input.City
	}
	if input.PhoneNumber != nil {
		vendor.PhoneNumber = *input.PhoneNumber
	}
	if input.WhatsappNumber != nil {
		vendor.WhatsappNumber = *input.WhatsappNumber
	}
	if input.IsActive != nil {
		vendor.IsActive = *input.IsActive
	}

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		srv.logger.Error("Failed to update vendor profile", "error", err, "vendorID", vendor.ID)

		return nil, errors.Wrap(err, "failed to update vendor profile")
	}
	srv.logger.Debug("Vendor profile updated", "vendorID", vendor.ID)

	return vendor, nil
}

// StorefrontQR renders the PNG QR code that links customers to the acting
// user's storefront.
func (srv *vendorService) StorefrontQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	vendor, err := srv.GetOwnVendorProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateStorefrontQR(vendor.ID)
	if err != nil {
		srv.logger.Error("Failed to generate storefront QR", "error", err, "vendorID", vendor.ID)

		return nil, errors.Wrap(err, "failed to generate storefront QR")
	}

	return png, nil
}
