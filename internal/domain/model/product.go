package model

import (
	"time"

	"gorm.io/gorm"
)

// 商品。公開APIからは読み取り専用
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       Money  `gorm:"type:decimal(10,2);not null" json:"price"`

	//セール時の打ち消し価格。無ければnull
	OldPrice *Money `gorm:"type:decimal(10,2)" json:"old_price,omitempty"`

	ImageURL   string    `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID int64     `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	IsActive  bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
