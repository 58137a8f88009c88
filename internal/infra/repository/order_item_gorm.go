package repository

import (
	"context"

	"loja/internal/domain/model"
	repo "loja/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// 注文明細を一括作成
func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].OrderID = orderID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// 商品名・画像付きで明細を返す。
// 商品が後から削除されていても履歴は出したいので、JOINはdeleted_atを見ない
func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemRow, error) {
	var rows []repo.OrderItemRow

	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`order_items.id, order_items.order_id, order_items.product_id,
			order_items.quantity, order_items.price_at_purchase,
			products.name as product_name, products.image_url as product_image`).
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&rows).Error

	if err != nil {
		return []repo.OrderItemRow{}, err
	}
	return rows, nil
}
