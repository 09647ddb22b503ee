package impl

import (
	"context"
	"fmt"
	"testing"

	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	mockRepo "raseed/internal/mocks/repository"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubRepositoryFactory hands the test mocks to transactional callbacks.
type stubRepositoryFactory struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func (f *stubRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return f.categoryRepo
}

func (f *stubRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.productRepo
}

// stubTransactionManager runs the callback directly, without a database.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func newCatalogFixture(t *testing.T) (*mockRepo.MockCategoryRepository, *mockRepo.MockProductRepository, usecase.CatalogUsecase) {
	t.Helper()

	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{
			categoryRepo: categoryRepo,
			productRepo:  productRepo,
		},
	}

	return categoryRepo, productRepo, NewCatalogService(categoryRepo, productRepo, txManager)
}

func TestCatalogService_ListCategories(t *testing.T) {
	categoryRepo, _, service := newCatalogFixture(t)

	ctx := context.Background()
	expected := []*entity.Category{
		{ID: uuid.New(), NameAr: "ألعاب", SortOrder: 1},
		{ID: uuid.New(), NameAr: "بطاقات", SortOrder: 2},
	}

	categoryRepo.EXPECT().
		ListCategories(ctx).
		Return(expected, nil)

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	categoryRepo, _, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	categoryRepo.EXPECT().
		FindCategoryByID(ctx, id).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := service.GetCategory(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.Nil(t, category)
}

func TestCatalogService_CreateCategory_AppliesDefaults(t *testing.T) {
	categoryRepo, _, service := newCatalogFixture(t)

	ctx := context.Background()

	categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.CreateCategory(ctx, &usecase.CategoryInput{
		NameAr: "  ألعاب  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ألعاب", category.NameAr)
	assert.Equal(t, "Package", category.Icon)
	assert.True(t, category.IsActive)
}

func TestCatalogService_CreateCategory_NameRequired(t *testing.T) {
	_, _, service := newCatalogFixture(t)

	category, err := service.CreateCategory(context.Background(), &usecase.CategoryInput{
		NameAr: "   ",
	})
	require.ErrorIs(t, err, domainerrors.ErrCategoryNameRequired)
	assert.Nil(t, category)
}

func TestCatalogService_CreateCategory_ExplicitInactive(t *testing.T) {
	categoryRepo, _, service := newCatalogFixture(t)

	ctx := context.Background()
	inactive := false

	categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.CreateCategory(ctx, &usecase.CategoryInput{
		NameAr:   "بطاقات",
		Icon:     "CreditCard",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "CreditCard", category.Icon)
	assert.False(t, category.IsActive)
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	categoryRepo, _, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	categoryRepo.EXPECT().
		UpdateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryNotFound)

	category, err := service.UpdateCategory(ctx, id, &usecase.CategoryInput{NameAr: "ألعاب"})
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.Nil(t, category)
}

func TestCatalogService_DeleteCategory_RefusedWhileReferenced(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		CountByCategory(ctx, id).
		Return(int64(3), nil)

	err := service.DeleteCategory(ctx, id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CATEGORY_IN_USE", appErr.ErrorCode())
	assert.Equal(t, fmt.Sprintf("لا يمكن حذف الفئة. يوجد %d منتج مرتبط بها", 3), appErr.Message())
}

func TestCatalogService_DeleteCategory_Empty(t *testing.T) {
	categoryRepo, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		CountByCategory(ctx, id).
		Return(int64(0), nil)

	categoryRepo.EXPECT().
		DeleteCategory(ctx, id).
		Return(nil)

	require.NoError(t, service.DeleteCategory(ctx, id))
}

func TestCatalogService_DeleteCategory_NotFound(t *testing.T) {
	categoryRepo, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		CountByCategory(ctx, id).
		Return(int64(0), nil)

	categoryRepo.EXPECT().
		DeleteCategory(ctx, id).
		Return(repository.ErrCategoryNotFound)

	err := service.DeleteCategory(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ListProducts_ClampsPaging(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()

	productRepo.EXPECT().
		ListProducts(ctx, repository.ListProductsQuery{Limit: 20, Offset: 0}).
		Return([]*entity.Product{}, int64(0), nil)

	_, _, err := service.ListProducts(ctx, &usecase.ListProductsInput{Page: 0, Limit: 0})
	require.NoError(t, err)

	productRepo.EXPECT().
		ListProducts(ctx, repository.ListProductsQuery{Limit: 100, Offset: 200}).
		Return([]*entity.Product{}, int64(0), nil)

	_, _, err = service.ListProducts(ctx, &usecase.ListProductsInput{Page: 3, Limit: 1000})
	require.NoError(t, err)
}

func TestCatalogService_ListProducts_TrimsSearch(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	categoryID := uuid.New()

	productRepo.EXPECT().
		ListProducts(ctx, repository.ListProductsQuery{
			Search:     "شدة",
			CategoryID: &categoryID,
			Limit:      20,
			Offset:     0,
		}).
		Return([]*entity.Product{{ID: uuid.New(), NameAr: "شدة ببجي"}}, int64(1), nil)

	products, total, err := service.ListProducts(ctx, &usecase.ListProductsInput{
		Search:     "  شدة  ",
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, int64(1), total)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	_, _, service := newCatalogFixture(t)

	ctx := context.Background()
	categoryID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.ProductInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   &usecase.ProductInput{CategoryID: categoryID, Price: 10},
			wantErr: domainerrors.ErrProductNameRequired,
		},
		{
			name:    "missing category",
			input:   &usecase.ProductInput{NameAr: "شدة ببجي", Price: 10},
			wantErr: domainerrors.ErrProductCategoryRequired,
		},
		{
			name:    "zero price",
			input:   &usecase.ProductInput{CategoryID: categoryID, NameAr: "شدة ببجي", Price: 0},
			wantErr: domainerrors.ErrProductPriceInvalid,
		},
		{
			name:    "negative price",
			input:   &usecase.ProductInput{CategoryID: categoryID, NameAr: "شدة ببجي", Price: -5},
			wantErr: domainerrors.ErrProductPriceInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.CreateProduct(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, product)
		})
	}
}

func TestCatalogService_CreateProduct_AppliesDefaults(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	categoryID := uuid.New()

	productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.CreateProduct(ctx, &usecase.ProductInput{
		CategoryID: categoryID,
		NameAr:     "شدة ببجي",
		Price:      15000,
	})
	require.NoError(t, err)
	assert.Equal(t, "IQD", product.Currency)
	assert.Equal(t, "Package", product.Icon)
	assert.True(t, product.IsActive)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	product, err := service.UpdateProduct(ctx, id, &usecase.ProductInput{
		CategoryID: uuid.New(),
		NameAr:     "شدة ببجي",
		Price:      15000,
	})
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, product)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		DeleteProduct(ctx, id).
		Return(repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListFilterTags(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()

	productRepo.EXPECT().
		ListFilterTags(ctx, (*uuid.UUID)(nil)).
		Return([]string{"pubg", "steam"}, nil)

	tags, err := service.ListFilterTags(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pubg", "steam"}, tags)
}

func TestCatalogService_ListFilterTags_Error(t *testing.T) {
	_, productRepo, service := newCatalogFixture(t)

	ctx := context.Background()

	productRepo.EXPECT().
		ListFilterTags(ctx, (*uuid.UUID)(nil)).
		Return(nil, errors.New("db gone"))

	tags, err := service.ListFilterTags(ctx, nil)
	require.Error(t, err)
	assert.Nil(t, tags)
}
