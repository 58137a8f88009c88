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
// Mocks（衝突回避の命名）
// =====================

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserIDWithProduct(ctx context.Context, userID int64) ([]repo.CartItemRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]repo.CartItemRow)
	return rows, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error {
	args := m.Called(ctx, userID, productID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *CartItemRepoMock) IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error) {
	args := m.Called(ctx, cartItemID, userID)
	return args.Bool(0), args.Error(1)
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func assertErrContains(t *testing.T, err error, msg string) {
	t.Helper()
	assert.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Contains(t, he.Message, msg)
}

// =====================
// GetCart / 小計
// =====================

func TestCartUsecase_GetCart_SubtotalServerSide(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	// 10.00×2 + 5.50×1 = 25.50
	rows := []repo.CartItemRow{
		{ID: 1, ProductID: 101, Quantity: 2, ProductName: "A", Price: model.MoneyFromFloat(10.00), IsActive: true},
		{ID: 2, ProductID: 102, Quantity: 1, ProductName: "B", Price: model.MoneyFromFloat(5.50), IsActive: true},
	}
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return(rows, nil)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, out.ItemCount)
	assert.Equal(t, "25.50", out.Subtotal.String())
	assert.Equal(t, "20.00", out.Items[0].LineTotal.String())

	cRepo.AssertExpectations(t)
}

func TestCartUsecase_GetCart_EmptyIsNormal(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return([]repo.CartItemRow{}, nil)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.ItemCount)
	assert.Equal(t, "0.00", out.Subtotal.String())
	assert.NotNil(t, out.Items)
}

func TestCartUsecase_GetCart_SkipsInactiveProduct(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	rows := []repo.CartItemRow{
		{ID: 1, ProductID: 101, Quantity: 2, Price: model.MoneyFromFloat(10.00), IsActive: true},
		{ID: 2, ProductID: 102, Quantity: 3, Price: model.MoneyFromFloat(99.99), IsActive: false},
	}
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return(rows, nil)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, out.ItemCount)
	assert.Equal(t, "20.00", out.Subtotal.String())
}

// =====================
// AddToCart
// =====================

func TestCartUsecase_AddToCart_SameProductIncrements(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, IsActive: true}, nil)
	cRepo.On("UpsertByUserAndProduct", mock.Anything, int64(1), int64(101), int64(2)).Return(nil)
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return([]repo.CartItemRow{
		{ID: 1, ProductID: 101, Quantity: 3, Price: model.MoneyFromFloat(10.00), IsActive: true},
	}, nil)

	out, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{ProductID: 101, Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.Items[0].Quantity)

	cRepo.AssertExpectations(t)
	pRepo.AssertExpectations(t)
}

func TestCartUsecase_AddToCart_DefaultQuantityIsOne(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, IsActive: true}, nil)
	cRepo.On("UpsertByUserAndProduct", mock.Anything, int64(1), int64(101), int64(1)).Return(nil)
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return([]repo.CartItemRow{}, nil)

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 101})
	assert.NoError(t, err)

	cRepo.AssertExpectations(t)
}

func TestCartUsecase_AddToCart_InactiveProductRejected(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, IsActive: false}, nil)

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 101, Quantity: 1})
	assertErrContains(t, err, "invalid product")

	cRepo.AssertNotCalled(t, "UpsertByUserAndProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_UnknownProductRejected(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 999, Quantity: 1})
	assertErrContains(t, err, "invalid product")
}

// =====================
// UpdateCartItem
// =====================

func TestCartUsecase_UpdateCartItem_ZeroDeletesRow(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	cRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(1)).Return(true, nil)
	cRepo.On("DeleteByID", mock.Anything, int64(10)).Return(nil)
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return([]repo.CartItemRow{}, nil)

	out, err := uc.UpdateCartItem(context.Background(), 1, 10, usecase.UpdateCartItemInput{Quantity: 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, out.ItemCount)

	cRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	cRepo.AssertExpectations(t)
}

func TestCartUsecase_UpdateCartItem_NegativeQuantityRejected(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	_, err := uc.UpdateCartItem(context.Background(), 1, 10, usecase.UpdateCartItemInput{Quantity: -1})
	assertErrContains(t, err, "invalid quantity")
}

func TestCartUsecase_UpdateCartItem_OtherUsersItemNotFound(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	cRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(2)).Return(false, nil)

	_, err := uc.UpdateCartItem(context.Background(), 2, 10, usecase.UpdateCartItemInput{Quantity: 3})
	assertErrContains(t, err, "not found")

	cRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateCartItem_Success(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	cRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(1)).Return(true, nil)
	cRepo.On("UpdateQuantity", mock.Anything, int64(10), int64(5)).Return(nil)
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return([]repo.CartItemRow{
		{ID: 10, ProductID: 101, Quantity: 5, Price: model.MoneyFromFloat(2.00), IsActive: true},
	}, nil)

	out, err := uc.UpdateCartItem(context.Background(), 1, 10, usecase.UpdateCartItemInput{Quantity: 5})
	assert.NoError(t, err)
	assert.Equal(t, "10.00", out.Subtotal.String())

	cRepo.AssertExpectations(t)
}

// =====================
// DeleteCartItem
// =====================

func TestCartUsecase_DeleteCartItem_Success(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	cRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(1)).Return(true, nil)
	cRepo.On("DeleteByID", mock.Anything, int64(10)).Return(nil)
	cRepo.On("ListByUserIDWithProduct", mock.Anything, int64(1)).Return([]repo.CartItemRow{}, nil)

	out, err := uc.DeleteCartItem(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.ItemCount)

	cRepo.AssertExpectations(t)
}

func TestCartUsecase_DeleteCartItem_OtherUsersItemNotFound(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartProductRepoMock))

	cRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(2)).Return(false, nil)

	_, err := uc.DeleteCartItem(context.Background(), 2, 10)
	assertErrContains(t, err, "not found")

	cRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
