package repository

import (
	"context"
	"errors"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ListProductsQuery narrows and pages a product listing.
type ListProductsQuery struct {
	// Search filters by case-insensitive partial match on the Arabic name.
	Search string

	// CategoryID scopes the listing to one category when non-nil.
	CategoryID *uuid.UUID

	Limit  int
	Offset int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// ListProducts returns a page of products, newest first, with the
	// category name joined, plus the exact total for the filter.
	ListProducts(ctx context.Context, query ListProductsQuery) ([]*entity.Product, int64, error)

	// FindProductByID retrieves a single product by its unique ID with the
	// category name joined.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct persists a new product entity to the storage.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct modifies an existing product entity in the storage.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct permanently removes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// CountByCategory returns the number of products referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// ListFilterTags returns the sorted distinct non-null filter tags,
	// optionally scoped to one category.
	ListFilterTags(ctx context.Context, categoryID *uuid.UUID) ([]string, error)
}
