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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the profile of the acting user. A zero user ID means
// no authenticated session and is rejected before touching the database.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of the input to the user's
// profile. Email and role are deliberately not updatable here.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		if !input.Gender.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown gender value")
		}
		user.Gender = *input.Gender
	}
	if input.Address != nil {
		user.Address = input.Address
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.logger.Error("Failed to update profile", "error", err, "userID", userID)

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}
	srv.logger.Debug("Profile updated", "userID", userID)

	return user, nil
}

// ResolveDestination computes where a signed-in user's client should land.
// Unauthenticated callers are sent to the sign-in surface instead of
// receiving an error.
func (srv *profileService) ResolveDestination(ctx context.Context, userID uuid.UUID) (entity.Destination, error) {
	if userID == uuid.Nil {
		return entity.DestinationSignIn, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.DestinationSignIn, nil
		}

		return "", errors.Wrap(err, "failed to resolve destination")
	}

	return entity.ResolveDestination(user.Role), nil
}
