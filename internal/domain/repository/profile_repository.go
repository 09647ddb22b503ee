package repository

import (
	"context"
	"errors"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ListProfilesQuery narrows and pages a profile listing.
type ListProfilesQuery struct {
	// Search matches full name OR phone, case-insensitive partial.
	Search string

	Limit  int
	Offset int
}

// ProfileRepository defines the operations for shopper profile persistence.
// Profiles are created externally at signup; the admin backend only reads
// them and toggles the block flag.
type ProfileRepository interface {
	// ListProfiles returns a page of profiles, newest first, plus the exact
	// total for the filter. Emails are not stored here; the caller merges
	// them from the identity provider.
	ListProfiles(ctx context.Context, query ListProfilesQuery) ([]*entity.Profile, int64, error)

	// SetBlocked sets is_blocked to the given explicit value, bumps
	// updated_at, and returns the minimal updated fields.
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*entity.Profile, error)

	// CountProfiles returns the total number of shopper profiles.
	CountProfiles(ctx context.Context) (int64, error)
}
