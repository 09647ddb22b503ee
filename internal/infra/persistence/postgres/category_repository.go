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

// categoryRepository implements the repository.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// ListCategories returns all categories ordered by sort order.
func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("sort_order").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindCategoryByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// CreateCategory persists a new category entity.
func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCategoryNameRequired.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	// Update the entity with generated values
	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// UpdateCategory modifies an existing category entity.
func (repo *categoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name_ar":        categoryM.NameAr,
			"description_ar": categoryM.DescriptionAr,
			"icon":           categoryM.Icon,
			"sort_order":     categoryM.SortOrder,
			"is_active":      categoryM.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	// Re-read for the bumped updated_at
	var updated model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", category.ID).First(&updated).Error; err != nil {
		return errors.Wrap(err, "failed to reload updated category")
	}
	category.UpdatedAt = updated.UpdatedAt
	category.CreatedAt = updated.CreatedAt

	return nil
}

// DeleteCategory permanently removes a category.
func (repo *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			// Schema-level backstop; the usecase counts referencing
			// products before ever reaching this point.
			return domainerrors.NewDatabaseExecuteError(result.Error, "category still referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:            data.ID,
		NameAr:        data.NameAr,
		DescriptionAr: data.DescriptionAr,
		Icon:          data.Icon,
		SortOrder:     data.SortOrder,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:            data.ID,
		NameAr:        data.NameAr,
		DescriptionAr: data.DescriptionAr,
		Icon:          data.Icon,
		SortOrder:     data.SortOrder,
		IsActive:      data.IsActive,
	}
}
