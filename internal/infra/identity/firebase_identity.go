// Package identity reads shopper account data from the external identity provider.
package identity

import (
	"context"
	"fmt"
	"log/slog"

	"raseed/config"
	"raseed/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type firebaseIdentity struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// noopIdentity is used when no identity provider is configured. Directory
// listings then carry empty emails.
type noopIdentity struct{}

func (noopIdentity) EmailsByID(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]string, error) {
	return map[uuid.UUID]string{}, nil
}

// NewIdentityService creates the identity provider client. When the provider
// is not configured it falls back to a no-op implementation and logs once.
func NewIdentityService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityService, error) {
	if cfg.Identity == nil || cfg.Identity.CredentialsPath == "" {
		logger.Warn("Identity provider not configured, directory emails will be empty")

		return noopIdentity{}, nil
	}

	opt := option.WithCredentialsFile(cfg.Identity.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Identity.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity provider auth client: %w", err)
	}

	return &firebaseIdentity{
		client: client,
		logger: logger,
	}, nil
}

// EmailsByID returns the provider email for each of the given shopper IDs.
// Shoppers without a provider record are simply absent from the result.
func (s *firebaseIdentity) EmailsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	identifiers := make([]firebaseauth.UserIdentifier, 0, len(ids))
	byUID := make(map[string]uuid.UUID, len(ids))
	for _, id := range ids {
		identifiers = append(identifiers, firebaseauth.UIDIdentifier{UID: id.String()})
		byUID[id.String()] = id
	}

	result, err := s.client.GetUsers(ctx, identifiers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identity provider accounts: %w", err)
	}

	emails := make(map[uuid.UUID]string, len(result.Users))
	for _, user := range result.Users {
		id, ok := byUID[user.UID]
		if !ok || user.Email == "" {
			continue
		}
		emails[id] = user.Email
	}

	if len(result.NotFound) > 0 {
		s.logger.Debug("Some shoppers have no identity provider record",
			slog.Int("missing", len(result.NotFound)),
		)
	}

	return emails, nil
}
