package impl

import (
	"context"
	"testing"

	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	mockRepo "raseed/internal/mocks/repository"
	mockSvc "raseed/internal/mocks/service"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	adminRepo *mockRepo.MockAdminRepository
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
	service   usecase.AdminUsecase
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	f := &adminFixture{
		adminRepo: mockRepo.NewMockAdminRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
	}
	f.service = NewAdminService(f.adminRepo, f.hasher, f.tokenSvc)

	return f
}

func TestAdminService_Login(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
	}

	// Email is canonicalized before the lookup.
	f.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "admin@example.com").
		Return(admin, nil)

	f.hasher.EXPECT().
		Check("Maktabi@2024", admin.PasswordHash).
		Return(true)

	f.tokenSvc.EXPECT().
		GenerateTokens(admin.ID).
		Return("access-token", "refresh-token", nil)

	result, err := f.service.Login(ctx, "  Admin@Example.COM  ", "Maktabi@2024")
	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, admin, result.Admin)
}

func TestAdminService_Login_EmptyCredentials(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	result, err := f.service.Login(ctx, "", "password")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)

	result, err = f.service.Login(ctx, "admin@example.com", "")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	f.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAdminNotFound)

	result, err := f.service.Login(ctx, "ghost@example.com", "password")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
	}

	f.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "admin@example.com").
		Return(admin, nil)

	f.hasher.EXPECT().
		Check("wrong", admin.PasswordHash).
		Return(false)

	result, err := f.service.Login(ctx, "admin@example.com", "wrong")
	// Identical to the unknown-email error so the response reveals nothing.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAdminService_Login_TokenFailure(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
	}

	f.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "admin@example.com").
		Return(admin, nil)

	f.hasher.EXPECT().
		Check("Maktabi@2024", admin.PasswordHash).
		Return(true)

	f.tokenSvc.EXPECT().
		GenerateTokens(admin.ID).
		Return("", "", errors.New("signing failed"))

	result, err := f.service.Login(ctx, "admin@example.com", "Maktabi@2024")
	require.Error(t, err)
	assert.Nil(t, result)
}
