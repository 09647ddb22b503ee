package service

import (
	"context"

	"github.com/google/uuid"
)

// IdentityService reads from the external identity provider that holds
// shopper credentials. Profiles only store the shopper's store-facing data;
// emails live with the provider and are merged in at read time.
type IdentityService interface {
	// EmailsByID returns the provider email for each of the given shopper
	// IDs. Missing shoppers are simply absent from the result.
	EmailsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
