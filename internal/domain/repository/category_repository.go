// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// ListCategories returns all categories ordered by sort order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryByID retrieves a single category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// CreateCategory persists a new category entity to the storage.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory modifies an existing category entity in the storage.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory permanently removes a category. Referential checks are
	// the caller's responsibility.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
