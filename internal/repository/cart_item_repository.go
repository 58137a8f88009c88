package repository

import (
	"context"

	"loja/internal/domain/model"
)

// カート明細＋商品情報のJOIN結果
type CartItemRow struct {
	ID           int64
	ProductID    int64
	Quantity     int64
	ProductName  string
	ProductImage string
	Price        model.Money
	OldPrice     *model.Money
	IsActive     bool
}

type CartItemRepository interface {
	//商品情報付きで一覧取得（カート表示・注文確定で使う）
	ListByUserIDWithProduct(ctx context.Context, userID int64) ([]CartItemRow, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	// 同一商品はプラス
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	//注文確定後のカート全削除
	DeleteAllByUserID(ctx context.Context, userID int64) error
	IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error)
}
