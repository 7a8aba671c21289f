// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/domain/service"
	"homeplate/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignUp orchestrates the complete account creation process. The user row
// and its credential are written in one transaction so a failure can never
// leave a credential without a profile behind it.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.logger.Info("Starting sign up", "email", input.Email, "role", input.Role)

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account role")
	}
	if input.Gender != nil && !input.Gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown gender value")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during sign up", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "sign up failed")
	}

	var createdUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		// 1. Check if a credential with this email already exists.
		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			// If no error, it means an auth record was found.
			return domainerrors.ErrUserAlreadyExists.WrapMessage("sign up failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// 2. Create the User entity with its role fixed for good.
		newUser := &entity.User{
			Email:       input.Email,
			FullName:    input.FullName,
			PhoneNumber: input.PhoneNumber,
			Role:        input.Role,
			DateOfBirth: input.DateOfBirth,
			Address:     input.Address,
			IsActive:    true,
		}
		if input.Gender != nil {
			newUser.Gender = *input.Gender
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the Authentication entity (the email/password credential).
		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
		}

		// 4. A vendor supplying business details gets the business profile
		// opened in the same transaction.
		if input.Role == entity.RoleVendor && input.BusinessName != "" {
			newVendor := &entity.Vendor{
				UserID:              newUser.ID,
				BusinessName:        input.BusinessName,
				BusinessDescription: input.BusinessDescription,
				IsActive:            true,
			}
			if err := repoFactory.VendorRepo().Create(ctx, newVendor); err != nil {
				return errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
			}
		}
		createdUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute sign up transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute sign up transaction")
	}
	srv.logger.Debug("User signed up successfully", "userID", createdUser.ID)

	return &usecase.SignUpOutput{User: createdUser}, nil
}

// Login orchestrates the login process. The returned Destination is resolved
// exactly once here; nothing else in the system redirects a signed-in user.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	// Login involves multiple steps, so we use a transaction to ensure atomicity,
	// especially for creating the new refresh token.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.RefreshTokenRepo()

		// 1. Find the credential.
		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			// This includes ErrAuthNotFound, which we treat as an invalid credential case.
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 3. Fetch the full user to determine the role and account state.
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "login failed")
		}

		// 4. Generate new tokens.
		roles := entity.Roles{user.Role}.ToStrings()
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, roles)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 5. Securely store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
		Destination:  entity.ResolveDestination(loggedInUser.Role),
	}, nil
}

// Logout ends the session identified by the refresh token. The session is
// considered ended no matter what the database says: revocation failures are
// logged and swallowed so a client can always drop its local state.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.logger.Debug("Starting logout")

	if input.RefreshToken == "" {
		return nil
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RefreshTokenRepo().DeleteRefreshTokenByHash(ctx, tokenHash)
	})
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.logger.Warn("Failed to revoke refresh token during logout", "error", err)
	}

	return nil
}

// RefreshToken handles the process of issuing a new token pair using a refresh token.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.logger.Debug("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		// 1. Verify the refresh token still exists in the database.
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if _, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
		}

		// 2. Fetch the user and its role.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "refresh failed")
		}

		// 3. Generate new tokens.
		roles := entity.Roles{user.Role}.ToStrings()
		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, roles)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		// 4. Store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(newRefreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		// 5. Delete the old refresh token.
		if err := tokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			// Log the error but don't fail the transaction, as the user has a new valid token.
			srv.logger.Warn("Failed to delete old refresh token", "error", err)
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Token refresh failed", "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute token refresh transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}
