package usecase

import (
	"context"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersInput narrows and pages a shopper directory listing.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
}

// DirectoryUsecase defines the interface for shopper directory use cases
type DirectoryUsecase interface {
	// ListUsers retrieves a page of shopper profiles enriched with identity
	// provider emails. Enrichment failures degrade to empty emails.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.Profile, int64, error)

	// SetBlocked sets the block flag to an explicit value
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*entity.Profile, error)

	// CountUsers returns the total number of shopper profiles
	CountUsers(ctx context.Context) (int64, error)
}
