package usecase_test

import (
	"context"
	"testing"

	"loja/internal/domain/model"
	repo "loja/internal/repository"
	"loja/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CatProductRepoMock struct{ mock.Mock }

func (m *CatProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CatProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type CatCategoryRepoMock struct{ mock.Mock }

func (m *CatCategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Category)
	return list, args.Error(1)
}

func (m *CatCategoryRepoMock) FindBySlug(ctx context.Context, slug string) (model.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

// =====================
// ListProducts
// =====================

func TestCatalogUsecase_ListProducts_InvalidPage(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatProductRepoMock), new(CatCategoryRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestCatalogUsecase_ListProducts_InvalidLimit(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatProductRepoMock), new(CatCategoryRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestCatalogUsecase_ListProducts_Success(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CatCategoryRepoMock))

	q := repo.ProductListQuery{Page: 1, Limit: 20, Search: "café"}
	items := []model.Product{{ID: 1, Name: "Café Torrado", IsActive: true}}
	pRepo.On("ListPublic", mock.Anything, q).Return(items, int64(1), nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Search: "café"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_ListProducts_SearchWinsOverCategory(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	catRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, catRepo)

	//search指定時はcategoryを解決しない
	q := repo.ProductListQuery{Page: 1, Limit: 20, Search: "caf", CategorySlug: "bebidas"}
	pRepo.On("ListPublic", mock.Anything, q).Return([]model.Product{}, int64(0), nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, Search: "caf", Category: "bebidas",
	})
	assert.NoError(t, err)
	assert.Nil(t, out.Category)

	catRepo.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_ListProducts_UnknownCategoryIsEmptyList(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	catRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, catRepo)

	catRepo.On("FindBySlug", mock.Anything, "nope").Return(model.Category{}, repo.ErrNotFound)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Category: "nope"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), out.Total)
	assert.NotNil(t, out.Items)
	assert.Len(t, out.Items, 0)

	pRepo.AssertNotCalled(t, "ListPublic", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_ListProducts_KnownCategoryResolved(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	catRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, catRepo)

	catRepo.On("FindBySlug", mock.Anything, "bebidas").Return(model.Category{ID: 3, Name: "Bebidas", Slug: "bebidas"}, nil)
	q := repo.ProductListQuery{Page: 1, Limit: 20, CategorySlug: "bebidas"}
	pRepo.On("ListPublic", mock.Anything, q).Return([]model.Product{{ID: 1}}, int64(1), nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Category: "bebidas"})
	assert.NoError(t, err)
	assert.NotNil(t, out.Category)
	assert.Equal(t, "Bebidas", out.Category.Name)
}

// =====================
// GetProductDetail
// =====================

func TestCatalogUsecase_GetProductDetail_NotFound(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CatCategoryRepoMock))

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	assertErrContains(t, err, "not found")
}

func TestCatalogUsecase_GetProductDetail_InactiveHidden(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CatCategoryRepoMock))

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: false}, nil)

	_, err := uc.GetProductDetail(context.Background(), 1)
	assertErrContains(t, err, "not found")
}

func TestCatalogUsecase_GetProductDetail_Success(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CatCategoryRepoMock))

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Café", Price: model.MoneyFromFloat(10.00), IsActive: true,
	}, nil)

	p, err := uc.GetProductDetail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	pRepo.AssertExpectations(t)
}

// =====================
// ListCategories
// =====================

func TestCatalogUsecase_ListCategories(t *testing.T) {
	catRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCatalogUsecase(new(CatProductRepoMock), catRepo)

	catRepo.On("List", mock.Anything).Return([]model.Category{
		{ID: 1, Name: "Bebidas", Slug: "bebidas"},
		{ID: 2, Name: "Doces", Slug: "doces"},
	}, nil)

	out, err := uc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
