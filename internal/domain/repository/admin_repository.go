package repository

import (
	"context"
	"errors"

	"raseed/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when an admin account is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the operations for back-office operator accounts.
type AdminRepository interface {
	// FindAdminByEmail retrieves a single admin account by email address.
	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
