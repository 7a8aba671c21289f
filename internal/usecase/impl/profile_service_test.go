package impl

import (
	"context"
	"testing"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest() (usecase.ProfileUsecase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	svc := NewProfileService(userRepo, newDiscardLogger())

	return svc, userRepo
}

func seedProfileUser(t *testing.T, userRepo *fakeUserRepo, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:       "profile@example.com",
		FullName:    "Original Name",
		PhoneNumber: "+15550100",
		Role:        role,
		IsActive:    true,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return user
}

func TestGetProfileRequiresAuthentication(t *testing.T) {
	svc, _ := newProfileServiceForTest()

	_, err := svc.GetProfile(context.Background(), uuid.Nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestGetProfileReturnsOwnProfile(t *testing.T) {
	svc, userRepo := newProfileServiceForTest()
	user := seedProfileUser(t, userRepo, entity.RoleCustomer)

	got, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Original Name", got.FullName)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newProfileServiceForTest()

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	svc, userRepo := newProfileServiceForTest()
	user := seedProfileUser(t, userRepo, entity.RoleCustomer)

	newName := "Updated Name"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
		FullName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.FullName)
	// Fields left nil keep their stored value.
	assert.Equal(t, "+15550100", updated.PhoneNumber)
	assert.Equal(t, "profile@example.com", updated.Email)
}

func TestUpdateProfileRequiresAuthentication(t *testing.T) {
	svc, _ := newProfileServiceForTest()

	name := "Anyone"
	_, err := svc.UpdateProfile(context.Background(), uuid.Nil, &usecase.UpdateProfileInput{FullName: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestUpdateProfileRejectsUnknownGender(t *testing.T) {
	svc, userRepo := newProfileServiceForTest()
	user := seedProfileUser(t, userRepo, entity.RoleCustomer)

	bad := entity.Gender("unknown-value")
	_, err := svc.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{Gender: &bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	// The stored profile is untouched.
	stored, findErr := userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, findErr)
	assert.Empty(t, stored.Gender)
}

func TestUpdateProfileSurfacesUpdateFailure(t *testing.T) {
	svc, userRepo := newProfileServiceForTest()
	user := seedProfileUser(t, userRepo, entity.RoleCustomer)
	userRepo.updateErr = errors.New("database unavailable")

	name := "Updated Name"
	_, err := svc.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{FullName: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserUpdateFailed)
}

func TestResolveDestinationByRole(t *testing.T) {
	tests := []struct {
		name        string
		role        entity.Role
		destination entity.Destination
	}{
		{name: "customer", role: entity.RoleCustomer, destination: entity.DestinationCustomerHome},
		{name: "vendor", role: entity.RoleVendor, destination: entity.DestinationVendorHome},
		{name: "admin", role: entity.RoleAdmin, destination: entity.DestinationVendorHome},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, userRepo := newProfileServiceForTest()
			user := seedProfileUser(t, userRepo, testCase.role)

			destination, err := svc.ResolveDestination(context.Background(), user.ID)
			require.NoError(t, err)
			assert.Equal(t, testCase.destination, destination)
		})
	}
}

func TestResolveDestinationWithoutSessionIsSignIn(t *testing.T) {
	svc, _ := newProfileServiceForTest()

	destination, err := svc.ResolveDestination(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DestinationSignIn, destination)
}

func TestResolveDestinationForMissingUserIsSignIn(t *testing.T) {
	svc, _ := newProfileServiceForTest()

	destination, err := svc.ResolveDestination(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.DestinationSignIn, destination)
}
