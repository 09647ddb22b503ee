package impl

import (
	"context"
	"strings"

	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100

	defaultIcon     = "Package"
	defaultCurrency = "IQD"
)

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	txManager    repository.TransactionManager
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	txManager repository.TransactionManager,
) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		txManager:    txManager,
	}
}

// ListCategories retrieves all categories ordered by sort order
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory retrieves a single category
func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// CreateCategory validates input, applies defaults and persists a new category
func (s *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := buildCategory(input)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory validates input and updates an existing category
func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := buildCategory(input)
	if err != nil {
		return nil, err
	}
	category.ID = id

	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category, refusing while products still reference
// it. The count and the delete run in one transaction so the refusal message
// always carries the exact referencing count.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		count, err := repos.ProductRepo().CountByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count products in category")
		}
		if count > 0 {
			return domainerrors.NewCategoryInUseError(count)
		}

		if err := repos.CategoryRepo().DeleteCategory(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return err
		}

		return nil
	})
}

// ListProducts retrieves a page of products with the category name joined
func (s *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, int64, error) {
	limit, offset := clampPage(input.Page, input.Limit, defaultProductLimit, maxProductLimit)

	products, total, err := s.productRepo.ListProducts(ctx, repository.ListProductsQuery{
		Search:     strings.TrimSpace(input.Search),
		CategoryID: input.CategoryID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return products, total, nil
}

// GetProduct retrieves a single product
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct validates input, applies defaults and persists a new product
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct validates input and updates an existing product
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// DeleteProduct permanently removes a product
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	return nil
}

// ListFilterTags retrieves the distinct filter tags, optionally scoped to a category
func (s *catalogService) ListFilterTags(ctx context.Context, categoryID *uuid.UUID) ([]string, error) {
	tags, err := s.productRepo.ListFilterTags(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list filter tags")
	}

	return tags, nil
}

// buildCategory validates a category input and applies defaults.
func buildCategory(input *usecase.CategoryInput) (*entity.Category, error) {
	nameAr := strings.TrimSpace(input.NameAr)
	if nameAr == "" {
		return nil, domainerrors.ErrCategoryNameRequired
	}

	icon := input.Icon
	if icon == "" {
		icon = defaultIcon
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Category{
		NameAr:        nameAr,
		DescriptionAr: input.DescriptionAr,
		Icon:          icon,
		SortOrder:     input.SortOrder,
		IsActive:      isActive,
	}, nil
}

// buildProduct validates a product input and applies defaults.
func buildProduct(input *usecase.ProductInput) (*entity.Product, error) {
	nameAr := strings.TrimSpace(input.NameAr)
	if nameAr == "" {
		return nil, domainerrors.ErrProductNameRequired
	}
	if input.CategoryID == uuid.Nil {
		return nil, domainerrors.ErrProductCategoryRequired
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrProductPriceInvalid
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	icon := input.Icon
	if icon == "" {
		icon = defaultIcon
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Product{
		CategoryID:    input.CategoryID,
		NameAr:        nameAr,
		DescriptionAr: input.DescriptionAr,
		Price:         input.Price,
		Currency:      currency,
		ImageURL:      input.ImageURL,
		Icon:          icon,
		FilterTag:     input.FilterTag,
		IsActive:      isActive,
	}, nil
}
