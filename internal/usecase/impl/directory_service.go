package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"raseed/internal/domain/constants"
	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultUserLimit = 20
	maxUserLimit     = 50
)

type directoryService struct {
	profileRepo repository.ProfileRepository
	identity    service.IdentityService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Identity    service.IdentityService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		profileRepo: params.ProfileRepo,
		identity:    params.Identity,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// ListUsers retrieves a page of shopper profiles enriched with identity
// provider emails. Enrichment failures degrade to empty emails with a logged
// warning, never a request failure.
func (s *directoryService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.Profile, int64, error) {
	limit, offset := clampPage(input.Page, input.Limit, defaultUserLimit, maxUserLimit)

	profiles, total, err := s.profileRepo.ListProfiles(ctx, repository.ListProfilesQuery{
		Search: strings.TrimSpace(input.Search),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	s.enrichEmails(ctx, profiles)

	return profiles, total, nil
}

// SetBlocked sets the block flag to an explicit value
func (s *directoryService) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*entity.Profile, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrUserIDRequired
	}

	profile, err := s.profileRepo.SetBlocked(ctx, id, blocked)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, err
	}

	s.publishEvent(ctx, constants.EventUserBlockToggled, profile.ID.String(), map[string]string{
		"is_blocked": strconv.FormatBool(blocked),
	})

	return profile, nil
}

// CountUsers returns the total number of shopper profiles
func (s *directoryService) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.profileRepo.CountProfiles(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count profiles")
	}

	return count, nil
}

// enrichEmails merges provider emails into the profiles in place. Profiles
// without a provider record keep an empty email.
func (s *directoryService) enrichEmails(ctx context.Context, profiles []*entity.Profile) {
	if len(profiles) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.ID)
	}

	emails, err := s.identity.EmailsByID(ctx, ids)
	if err != nil {
		s.logger.Warn("Identity provider email enrichment failed, returning empty emails",
			slog.Int("profiles", len(profiles)),
			slog.String("error", err.Error()),
		)

		return
	}

	for _, profile := range profiles {
		profile.Email = emails[profile.ID]
	}
}

// publishEvent publishes an admin action event. Publish failures are logged,
// never surfaced.
func (s *directoryService) publishEvent(ctx context.Context, eventType, entityID string, payload map[string]string) {
	event := &service.AdminEvent{
		RequestID: requestIDFromContext(ctx),
		Type:      eventType,
		EntityID:  entityID,
		Payload:   payload,
	}

	if err := s.publisher.PublishAdminEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish admin event",
			slog.String("type", eventType),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()),
		)
	}
}
