package repository

import (
	"context"

	"loja/internal/domain/model"
)

// 注文明細＋商品情報のJOIN結果（履歴表示用）
type OrderItemRow struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	Quantity        int64
	PriceAtPurchase model.Money
	ProductName     string
	ProductImage    string
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	//商品名・画像付きで返す（orders → order_items → productsのネストJOIN）
	ListByOrderID(ctx context.Context, orderID int64) ([]OrderItemRow, error)
}
