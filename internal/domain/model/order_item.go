package model

import "time"

// 注文明細。price_at_purchaseは購入時点の価格のスナップショットで、
// 後から商品価格が変わっても注文履歴には反映させない
type OrderItem struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64     `gorm:"not null;index" json:"order_id"`
	ProductID       int64     `gorm:"not null;index" json:"product_id"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	PriceAtPurchase Money     `gorm:"type:decimal(10,2);not null;column:price_at_purchase" json:"price_at_purchase"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
