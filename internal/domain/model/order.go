package model

import "time"

// 注文ステータス。PENDINGで作られた後の遷移は管理側・外部システムが行う
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusShipped  OrderStatus = "SHIPPED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64       `gorm:"not null;index;uniqueIndex:ux_orders_user_idem_key" json:"user_id"`
	AddressID  int64       `gorm:"not null;index" json:"address_id"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice Money       `gorm:"type:decimal(10,2);not null" json:"total_price"`

	//注文が参照している住所は消せない（履歴の配送先を守る）
	Address Address `gorm:"foreignKey:AddressID;constraint:OnDelete:RESTRICT" json:"-"`

	//二重送信防止キー。ユーザーごとに一意で、同じキーなら同じ注文を返す
	IdempotencyKey string `gorm:"type:varchar(255);not null;uniqueIndex:ux_orders_user_idem_key" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
