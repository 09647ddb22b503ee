// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries the admin-editable category fields.
type CategoryInput struct {
	NameAr        string
	DescriptionAr *string
	Icon          string
	SortOrder     int
	IsActive      *bool
}

// ProductInput carries the admin-editable product fields.
type ProductInput struct {
	CategoryID    uuid.UUID
	NameAr        string
	DescriptionAr *string
	Price         float64
	Currency      string
	ImageURL      *string
	Icon          string
	FilterTag     *string
	IsActive      *bool
}

// ListProductsInput narrows and pages a product listing.
type ListProductsInput struct {
	Page       int
	Limit      int
	Search     string
	CategoryID *uuid.UUID
}

// CatalogUsecase defines the interface for catalog management use cases
type CatalogUsecase interface {
	// ListCategories retrieves all categories ordered by sort order
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory retrieves a single category
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// CreateCategory validates input, applies defaults and persists a new category
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory validates input and updates an existing category
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category, refusing while products still reference it
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ListProducts retrieves a page of products with the category name joined
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, int64, error)

	// GetProduct retrieves a single product
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct validates input, applies defaults and persists a new product
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct validates input and updates an existing product
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct permanently removes a product
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ListFilterTags retrieves the distinct filter tags, optionally scoped to a category
	ListFilterTags(ctx context.Context, categoryID *uuid.UUID) ([]string, error)
}
