package impl

import (
	"context"
	"testing"

	"raseed/internal/domain/constants"
	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	mockRepo "raseed/internal/mocks/repository"
	mockSvc "raseed/internal/mocks/service"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directoryFixture struct {
	profileRepo *mockRepo.MockProfileRepository
	identity    *mockSvc.MockIdentityService
	publisher   *mockSvc.MockEventPublisher
	service     usecase.DirectoryUsecase
}

func newDirectoryFixture(t *testing.T) *directoryFixture {
	t.Helper()

	f := &directoryFixture{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		identity:    mockSvc.NewMockIdentityService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewDirectoryService(DirectoryServiceParams{
		ProfileRepo: f.profileRepo,
		Identity:    f.identity,
		Publisher:   f.publisher,
		Logger:      discardLogger(),
	})

	return f
}

func TestDirectoryService_ListUsers_MergesEmails(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	first := &entity.Profile{ID: uuid.New(), FullName: "أحمد علي"}
	second := &entity.Profile{ID: uuid.New(), FullName: "سارة حسن"}

	f.profileRepo.EXPECT().
		ListProfiles(ctx, repository.ListProfilesQuery{Limit: 20, Offset: 0}).
		Return([]*entity.Profile{first, second}, int64(2), nil)

	f.identity.EXPECT().
		EmailsByID(ctx, []uuid.UUID{first.ID, second.ID}).
		Return(map[uuid.UUID]string{first.ID: "ahmed@example.com"}, nil)

	profiles, total, err := f.service.ListUsers(ctx, &usecase.ListUsersInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "ahmed@example.com", profiles[0].Email)
	// No identity record keeps the email empty.
	assert.Empty(t, profiles[1].Email)
}

func TestDirectoryService_ListUsers_IdentityFailureDegrades(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	profile := &entity.Profile{ID: uuid.New(), FullName: "أحمد علي"}

	f.profileRepo.EXPECT().
		ListProfiles(ctx, repository.ListProfilesQuery{Limit: 20, Offset: 0}).
		Return([]*entity.Profile{profile}, int64(1), nil)

	f.identity.EXPECT().
		EmailsByID(ctx, []uuid.UUID{profile.ID}).
		Return(nil, errors.New("provider unreachable"))

	profiles, total, err := f.service.ListUsers(ctx, &usecase.ListUsersInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, profiles[0].Email)
}

func TestDirectoryService_ListUsers_EmptyPageSkipsIdentity(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().
		ListProfiles(ctx, repository.ListProfilesQuery{Search: "سارة", Limit: 20, Offset: 0}).
		Return([]*entity.Profile{}, int64(0), nil)

	profiles, total, err := f.service.ListUsers(ctx, &usecase.ListUsersInput{Search: " سارة "})
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.Equal(t, int64(0), total)
}

func TestDirectoryService_ListUsers_ClampsLimit(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().
		ListProfiles(ctx, repository.ListProfilesQuery{Limit: 50, Offset: 50}).
		Return([]*entity.Profile{}, int64(0), nil)

	_, _, err := f.service.ListUsers(ctx, &usecase.ListUsersInput{Page: 2, Limit: 200})
	require.NoError(t, err)
}

func TestDirectoryService_SetBlocked(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()
	id := uuid.New()
	blocked := &entity.Profile{ID: id, IsBlocked: true}

	f.profileRepo.EXPECT().
		SetBlocked(ctx, id, true).
		Return(blocked, nil)

	f.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Run(func(_ context.Context, event *service.AdminEvent) {
			assert.Equal(t, constants.EventUserBlockToggled, event.Type)
			assert.Equal(t, id.String(), event.EntityID)
			assert.Equal(t, "true", event.Payload["is_blocked"])
		}).
		Return(nil)

	profile, err := f.service.SetBlocked(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, profile.IsBlocked)
}

func TestDirectoryService_SetBlocked_Validation(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	profile, err := f.service.SetBlocked(ctx, uuid.Nil, true)
	require.ErrorIs(t, err, domainerrors.ErrUserIDRequired)
	assert.Nil(t, profile)
}

func TestDirectoryService_SetBlocked_NotFound(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.profileRepo.EXPECT().
		SetBlocked(ctx, id, false).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := f.service.SetBlocked(ctx, id, false)
	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, profile)
}

func TestDirectoryService_CountUsers(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().
		CountProfiles(ctx).
		Return(int64(42), nil)

	count, err := f.service.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
