package postgres

import (
	"context"

	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListProducts returns a page of products, newest first, with the category
// name preloaded, plus the exact total for the filter.
func (repo *productRepository) ListProducts(ctx context.Context, query repository.ListProductsQuery) ([]*entity.Product, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if query.Search != "" {
		tx = tx.Where("name_ar ILIKE ?", "%"+query.Search+"%")
	}
	if query.CategoryID != nil {
		tx = tx.Where("category_id = ?", *query.CategoryID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := tx.
		Preload("Category").
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// FindProductByID retrieves a single product with the category name preloaded.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// CreateProduct persists a new product entity. The category FK is enforced
// by the schema, not re-checked here.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductCategoryRequired.WrapMessage("invalid category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductNameRequired.WrapMessage("missing required product information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrProductPriceInvalid.WrapMessage("price constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct modifies an existing product entity.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id":    productM.CategoryID,
			"name_ar":        productM.NameAr,
			"description_ar": productM.DescriptionAr,
			"price":          productM.Price,
			"currency":       productM.Currency,
			"image_url":      productM.ImageURL,
			"icon":           productM.Icon,
			"filter_tag":     productM.FilterTag,
			"is_active":      productM.IsActive,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrProductCategoryRequired.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	var updated model.ProductModel
	if err := repo.db.WithContext(ctx).Preload("Category").Where("id = ?", product.ID).First(&updated).Error; err != nil {
		return errors.Wrap(err, "failed to reload updated product")
	}
	product.CreatedAt = updated.CreatedAt
	product.UpdatedAt = updated.UpdatedAt
	if updated.Category != nil {
		product.CategoryNameAr = updated.Category.NameAr
	}

	return nil
}

// DeleteProduct permanently removes a product.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CountByCategory returns the number of products referencing a category.
func (repo *productRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

// ListFilterTags returns the sorted distinct non-null filter tags,
// optionally scoped to one category.
func (repo *productRepository) ListFilterTags(ctx context.Context, categoryID *uuid.UUID) ([]string, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("filter_tag IS NOT NULL")

	if categoryID != nil {
		tx = tx.Where("category_id = ?", *categoryID)
	}

	var tags []string
	if err := tx.
		Distinct("filter_tag").
		Order("filter_tag").
		Pluck("filter_tag", &tags).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list filter tags")
	}

	return tags, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		NameAr:        data.NameAr,
		DescriptionAr: data.DescriptionAr,
		Price:         data.Price,
		Currency:      data.Currency,
		ImageURL:      data.ImageURL,
		Icon:          data.Icon,
		FilterTag:     data.FilterTag,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Category != nil {
		product.CategoryNameAr = data.Category.NameAr
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		NameAr:        data.NameAr,
		DescriptionAr: data.DescriptionAr,
		Price:         data.Price,
		Currency:      data.Currency,
		ImageURL:      data.ImageURL,
		Icon:          data.Icon,
		FilterTag:     data.FilterTag,
		IsActive:      data.IsActive,
	}
}
